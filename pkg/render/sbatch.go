package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

var sbatchTemplate = template.Must(template.New("sbatch").Option("missingkey=error").Parse(`#!/bin/bash
#SBATCH --job-name={{.JobName}}
#SBATCH --nodes={{.Nodes}}
#SBATCH --ntasks={{.NTasks}}
#SBATCH --time={{.Walltime}}
#SBATCH --mem={{.Memory}}
#SBATCH --output=slurm-%j.out
{{- if .Partition}}
#SBATCH --partition={{.Partition}}
{{- end}}

# Load ORCA module
module purge
module load {{.ModuleLoad}}

# Set environment variables
export RSH_COMMAND="{{.RSHCommand}}"

# Print job information
echo "========================================="
echo "Job started at: $(date)"
echo "Job ID: $SLURM_JOB_ID"
echo "Node: $SLURM_NODELIST"
echo "Working directory: $PWD"
echo "========================================="
echo ""

# Run ORCA
{{.OrcaPath}} {{.InpFile}} > {{.OutFile}}

# Print completion information
echo ""
echo "========================================="
echo "Job completed at: $(date)"
echo "========================================="
`))

type sbatchData struct {
	JobName    string
	Nodes      string
	NTasks     string
	Walltime   string
	Memory     string
	Partition  string
	ModuleLoad string
	RSHCommand string
	OrcaPath   string
	InpFile    string
	OutFile    string
}

// SubmissionScript renders the sbatch script that runs ORCA on the input
// file produced for the same geometry. The task count equals the total
// processor count requested for the calculation.
func SubmissionScript(job config.Job, base string) (string, error) {
	data := sbatchData{
		JobName:    JobName(base, job.Variant),
		Nodes:      job.Slurm.Nodes,
		NTasks:     job.NProcs,
		Walltime:   job.Slurm.Walltime,
		Memory:     job.Slurm.Memory,
		Partition:  job.Slurm.Partition,
		ModuleLoad: job.Slurm.ModuleLoad,
		RSHCommand: job.Slurm.RSHCommand,
		OrcaPath:   job.Slurm.OrcaPath,
		InpFile:    InputFileName(base, job.Variant),
		OutFile:    OutputLogName(base, job.Variant),
	}
	var buf bytes.Buffer
	if err := sbatchTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering submission script for %s: %w", base, err)
	}
	return buf.String(), nil
}
