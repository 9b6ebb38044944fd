package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/xyzset"
)

func TestRenderAll_EndToEndDefaults(t *testing.T) {
	console.InitConsole(true)
	workDir := t.TempDir()
	xyzDir := filepath.Join(workDir, "xyzs")
	require.NoError(t, os.MkdirAll(xyzDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(xyzDir, "pep1.xyz"), []byte("3\n\nO 0 0 0\nH 1 0 0\nH 0 1 0\n"), 0644))

	files, err := xyzset.Discover(xyzDir, ".xyz")
	require.NoError(t, err)

	job := config.Defaults()
	job.OutputDir = filepath.Join(workDir, "goat_inputs")

	var out bytes.Buffer
	runner := &Runner{Out: &out}
	submitPath, err := runner.RenderAll(job, files)
	require.NoError(t, err)

	inpPath := filepath.Join(job.OutputDir, "pep1_goat.inp")
	scriptPath := filepath.Join(job.OutputDir, "run_pep1_goat.sh")

	inp, err := os.ReadFile(inpPath)
	require.NoError(t, err)
	assert.Contains(t, string(inp), "! GOAT XTB2  NORMALOPT\n")

	script, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(script), "pep1_goat.inp")

	info, err := os.Stat(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	submitInfo, err := os.Stat(submitPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), submitInfo.Mode().Perm())

	assert.Contains(t, out.String(), "Processing: pep1.xyz")
	assert.Contains(t, out.String(), "Created: "+inpPath)
}

func TestRenderAll_MultipleFilesSortedOrder(t *testing.T) {
	console.InitConsole(true)
	workDir := t.TempDir()
	xyzDir := filepath.Join(workDir, "xyzs")
	require.NoError(t, os.MkdirAll(xyzDir, 0755))
	for _, name := range []string{"b.xyz", "a.xyz", "c.xyz"} {
		require.NoError(t, os.WriteFile(filepath.Join(xyzDir, name), []byte("1\n\nH 0 0 0\n"), 0644))
	}

	files, err := xyzset.Discover(xyzDir, ".xyz")
	require.NoError(t, err)

	job := config.Defaults()
	job.OutputDir = filepath.Join(workDir, "out")

	var out bytes.Buffer
	_, err = (&Runner{Out: &out}).RenderAll(job, files)
	require.NoError(t, err)

	for _, base := range []string{"a", "b", "c"} {
		assert.FileExists(t, filepath.Join(job.OutputDir, base+"_goat.inp"))
		assert.FileExists(t, filepath.Join(job.OutputDir, "run_"+base+"_goat.sh"))
	}
	aIdx := bytes.Index(out.Bytes(), []byte("Processing: a.xyz"))
	bIdx := bytes.Index(out.Bytes(), []byte("Processing: b.xyz"))
	cIdx := bytes.Index(out.Bytes(), []byte("Processing: c.xyz"))
	assert.True(t, aIdx < bIdx && bIdx < cIdx)
}
