package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	job := config.Defaults()
	job.Variant = config.GOATEntropy
	job.Entropy = &config.EntropyParams{MinDelS: "0.3", ConfDegen: "12"}
	job.Slurm.Partition = "bigmem"
	job.GFNUphill = "gfn2xtb"

	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, Save(path, job))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, job, loaded)
}

func TestLoad_VariantKeywordInYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	doc := `variant: GOAT-EXPLORE
method: XTB2
explore:
  freeze_bonds: true
  freeze_angles: false
output_dir: out
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	job, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.GOATExplore, job.Variant)
	require.NotNil(t, job.Explore)
	assert.True(t, job.Explore.FreezeBonds)
	assert.False(t, job.Explore.FreezeAngles)
}

func TestLoad_MissingVariantSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: GOAT-ENTROPY\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: [oops\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
