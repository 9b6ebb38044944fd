package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

func TestSubmissionScript_Defaults(t *testing.T) {
	job := config.Defaults()
	script, err := SubmissionScript(job, "pep1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(script, "#!/bin/bash\n"))
	assert.Contains(t, script, "#SBATCH --job-name=pep1_goat\n")
	assert.Contains(t, script, "#SBATCH --nodes=1\n")
	assert.Contains(t, script, "#SBATCH --ntasks=200\n")
	assert.Contains(t, script, "#SBATCH --time=96:00:00\n")
	assert.Contains(t, script, "#SBATCH --mem=400G\n")
	assert.Contains(t, script, "#SBATCH --output=slurm-%j.out\n")
	assert.NotContains(t, script, "--partition")

	assert.Contains(t, script, "module purge\nmodule load OpenMPI/4.1.6-GCC-13.2.0 ORCA/6.1.0\n")
	assert.Contains(t, script, `export RSH_COMMAND="sh"`)
	assert.Contains(t, script, "/path/to/orca pep1_goat.inp > pep1_goat.out\n")
	assert.Contains(t, script, `echo "Job started at: $(date)"`)
	assert.Contains(t, script, `echo "Job completed at: $(date)"`)
}

func TestSubmissionScript_Partition(t *testing.T) {
	job := config.Defaults()
	job.Slurm.Partition = "long"
	script, err := SubmissionScript(job, "pep1")
	require.NoError(t, err)
	assert.Contains(t, script, "#SBATCH --partition=long\n")
}

func TestSubmissionScript_VariantNaming(t *testing.T) {
	job := config.Defaults()
	job.Variant = config.GOATDiversity
	script, err := SubmissionScript(job, "cyc8")
	require.NoError(t, err)
	assert.Contains(t, script, "#SBATCH --job-name=cyc8_goat_diversity\n")
	assert.Contains(t, script, "cyc8_goat_diversity.inp > cyc8_goat_diversity.out")
}
