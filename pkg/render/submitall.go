package render

// SubmitAllName is the file name of the shared batch submission helper.
const SubmitAllName = "submit_all_jobs.sh"

// submitAllScript is fixed content, independent of the run configuration.
// The job-id extraction matches the sbatch success message; when the
// scheduler prints something else, the raw output is reported instead of
// recording an empty id.
const submitAllScript = `#!/bin/bash

# Batch submission script for all GOAT jobs
# Generated automatically by orca-goat-generator

echo "========================================="
echo "  Submitting All GOAT Jobs"
echo "========================================="
echo ""

# Find all sbatch scripts
sbatch_scripts=(run_*.sh)

if [ ${#sbatch_scripts[@]} -eq 0 ] || [ ! -e "${sbatch_scripts[0]}" ]; then
    echo "ERROR: No sbatch scripts found!"
    exit 1
fi

echo "Found ${#sbatch_scripts[@]} job(s) to submit:"
echo ""

# Submit each job
job_ids=()
for script in "${sbatch_scripts[@]}"; do
    if [ -f "$script" ] && [ -x "$script" ]; then
        echo "Submitting: $script"
        output=$(sbatch "$script" 2>&1)
        if [ $? -eq 0 ]; then
            job_id=$(echo "$output" | grep -oP 'Submitted batch job \K\d+')
            if [ -n "$job_id" ]; then
                job_ids+=("$job_id")
                echo "  ✓ Job ID: $job_id"
            else
                echo "  ? Submitted, but no job id recognized: $output"
            fi
        else
            echo "  ✗ Failed: $output"
        fi
    else
        echo "Skipping: $script (not executable or not found)"
    fi
    echo ""
done

echo "========================================="
echo "  Submission Summary"
echo "========================================="
echo ""
echo "Total jobs submitted: ${#job_ids[@]}"
echo "Job IDs: ${job_ids[@]}"
echo ""
echo "To monitor jobs:"
echo "  squeue -u $USER"
echo "  squeue -j $(IFS=,; echo "${job_ids[*]}")"
echo ""
echo "To cancel all jobs:"
echo "  scancel $(IFS=' '; echo "${job_ids[*]}")"
echo ""
`

// SubmitAllScript returns the shared helper that submits every generated
// run_*.sh in its working directory and reports collected job ids.
func SubmitAllScript() string {
	return submitAllScript
}
