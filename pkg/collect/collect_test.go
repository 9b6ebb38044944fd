package collect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/prompt"
)

func scripted(t *testing.T, lines ...string) (*Collector, *bytes.Buffer) {
	t.Helper()
	console.InitConsole(true)
	var out bytes.Buffer
	input := strings.Join(lines, "\n") + "\n"
	return New(prompt.New(strings.NewReader(input), &out)), &out
}

// answers for every prompt after the variant menu in a plain-GOAT run,
// all defaults accepted
func defaultAnswers() []string {
	return []string{
		"", // method
		"", // CPCM?
		"", // optimization level
		"", // additional keywords
		"", // nprocs
		"", // nworkers
		"", // max cores per opt
		"", // max iter
		"", // min global iter
		"", // max en
		"", // conf temp
		"", // keep worker data?
		"", // freeze amides?
		"", // freeze cis/trans?
		"", // gfn uphill?
		"", // geom max iter
		"", // tol e
		"", // tol rmsg
		"", // tol maxg
		"", // charge
		"", // mult
		"", // nodes
		"", // walltime
		"", // memory
		"", // partition
		"", // module load
		"", // orca path
		"", // rsh command
		"", // output dir
	}
}

func TestCollect_AllDefaults(t *testing.T) {
	lines := append([]string{"1"}, defaultAnswers()...)
	c, _ := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)

	want := config.Defaults()
	assert.Equal(t, want, job)
	assert.Equal(t, config.GOAT, job.Variant)
	assert.Equal(t, "XTB2", job.Method)
	assert.Equal(t, "NORMALOPT", job.ExtraKeywords)
	assert.Equal(t, "", job.SolventKeyword)
	assert.Nil(t, job.Entropy)
	assert.Nil(t, job.Explore)
	assert.True(t, job.FreezeAmides)
	assert.Equal(t, "goat_inputs", job.OutputDir)
}

func TestCollect_EntropyVariant(t *testing.T) {
	answers := defaultAnswers()
	// MINDELS and CONFDEGEN are asked right after the worker-data question
	withEntropy := append([]string{}, answers[:12]...)
	withEntropy = append(withEntropy, "0.2", "AUTOMAX")
	withEntropy = append(withEntropy, answers[12:]...)

	lines := append([]string{"2"}, withEntropy...)
	c, _ := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, config.GOATEntropy, job.Variant)
	require.NotNil(t, job.Entropy)
	assert.Equal(t, "0.2", job.Entropy.MinDelS)
	assert.Equal(t, "AUTOMAX", job.Entropy.ConfDegen)
	assert.Nil(t, job.Explore)
}

func TestCollect_ExploreVariant(t *testing.T) {
	answers := defaultAnswers()
	withExplore := append([]string{}, answers[:12]...)
	withExplore = append(withExplore, "y", "n")
	withExplore = append(withExplore, answers[12:]...)

	lines := append([]string{"3"}, withExplore...)
	c, _ := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, config.GOATExplore, job.Variant)
	require.NotNil(t, job.Explore)
	assert.True(t, job.Explore.FreezeBonds)
	assert.False(t, job.Explore.FreezeAngles)
	assert.Nil(t, job.Entropy)
}

func TestCollect_SolvationAndKeywords(t *testing.T) {
	answers := defaultAnswers()
	answers[1] = "y" // CPCM
	// a solvent-name answer slots in after the yes
	withSolvent := append([]string{}, answers[:2]...)
	withSolvent = append(withSolvent, "DMSO")
	withSolvent = append(withSolvent, answers[2:]...)
	withSolvent[3] = "TIGHTOPT"
	withSolvent[4] = "GRID5"

	lines := append([]string{"1"}, withSolvent...)
	c, _ := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, "CPCM(DMSO)", job.SolventKeyword)
	assert.Equal(t, "TIGHTOPT GRID5", job.ExtraKeywords)
}

func TestCollect_GFNUphill(t *testing.T) {
	answers := defaultAnswers()
	answers[14] = "y" // use faster uphill method
	withMethod := append([]string{}, answers[:15]...)
	withMethod = append(withMethod, "gfnff")
	withMethod = append(withMethod, answers[15:]...)

	lines := append([]string{"1"}, withMethod...)
	c, _ := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, "gfnff", job.GFNUphill)
}

func TestCollect_InvalidVariantReprompts(t *testing.T) {
	lines := append([]string{"7", "x", "4"}, defaultAnswers()...)
	c, out := scripted(t, lines...)

	job, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, config.GOATDiversity, job.Variant)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice. Please enter 1-4."))
}

func TestCollect_EOFPropagates(t *testing.T) {
	c, _ := scripted(t, "1", "", "")
	_, err := c.Collect()
	require.Error(t, err)
}
