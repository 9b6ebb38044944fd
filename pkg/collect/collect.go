// Package collect walks the interactive configuration flow and fills a
// typed job configuration from the answers.
package collect

import (
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/prompt"
)

// Collector gathers one Job via sequential prompts. Prompt errors (EOF on
// stdin) stick: later prompts become no-ops and Collect returns the first
// error.
type Collector struct {
	p   *prompt.Prompter
	err error
}

func New(p *prompt.Prompter) *Collector {
	return &Collector{p: p}
}

func (c *Collector) str(label, def string) string {
	if c.err != nil {
		return ""
	}
	v, err := c.p.String(label, def)
	if err != nil {
		c.err = err
		return ""
	}
	return v
}

func (c *Collector) yesNo(label string, def bool) bool {
	if c.err != nil {
		return false
	}
	v, err := c.p.YesNo(label, def)
	if err != nil {
		c.err = err
		return false
	}
	return v
}

func (c *Collector) section(title string) {
	if c.err != nil {
		return
	}
	c.p.Say("", console.Info("=== "+title+" ==="))
}

// SelectVariant shows the four-entry menu and re-prompts until a valid
// index is entered.
func (c *Collector) SelectVariant() (config.Variant, error) {
	c.p.Say(
		"",
		console.Info("Select GOAT variant:"),
		"  1) GOAT           - Find global minimum and conformational ensemble",
		"  2) GOAT-ENTROPY   - Maximize conformational entropy (most complete ensemble)",
		"  3) GOAT-EXPLORE   - Topology-free search (can break bonds)",
		"  4) GOAT-DIVERSITY - Maximize structural diversity (ignore energies)",
		"",
	)
	choice, err := c.p.Choice("Enter choice [1-4]:", len(config.Variants()))
	if err != nil {
		return config.GOAT, err
	}
	return config.Variants()[choice-1], nil
}

// Collect runs the full prompt sequence and returns the assembled job.
func (c *Collector) Collect() (config.Job, error) {
	job := config.Defaults()

	variant, err := c.SelectVariant()
	if err != nil {
		return job, err
	}
	job.Variant = variant
	c.p.Say(console.Successf("Selected: %s", variant.Keyword()))

	c.section("Computational Method Settings")
	job.Method = c.str("Computational method (e.g., XTB2, R2SCAN-3C, PBE)", "XTB2")

	c.section("Solvent Settings")
	if c.yesNo("Use implicit solvation (CPCM)?", false) {
		c.p.Say(
			"",
			"  Common solvents:",
			"    Water, Acetone, Acetonitrile, Ammonia, Benzene, CCl4,",
			"    CH2Cl2, CHCl3, Cyclohexane, DMF, DMSO, Ethanol, Ether,",
			"    Hexane, Methanol, Octanol, Pyridine, THF, Toluene",
			"",
		)
		solvent := c.str("Solvent name", "Water")
		job.SolventKeyword = config.SolventWrapper(solvent)
	} else {
		job.SolventKeyword = ""
	}

	c.section("Optimization Level")
	c.p.Say(
		"  Optimization levels:",
		"    SLOPPYOPT  - Loose convergence (fastest, for diversity scans)",
		"    NORMALOPT  - Standard convergence (recommended, default)",
		"    TIGHTOPT   - Tight convergence (slower, for accurate energies)",
		"",
	)
	optLevel := c.str("Optimization level", "NORMALOPT")
	c.p.Say("")
	additional := c.str("Additional keywords (optional, e.g., GRID5, DEFGRID3)", "")
	job.ExtraKeywords = config.CombineKeywords(optLevel, additional)

	c.section("Parallelization Settings")
	job.NProcs = c.str("Total number of processors", "200")
	job.NWorkers = c.str("Number of workers", "25")
	job.MaxCoresOpt = c.str("Max cores per optimization", "32")

	c.section("GOAT Algorithm Parameters")
	job.MaxIter = c.str("Maximum global iterations", "256")
	job.MinGlobalIter = c.str("Minimum global iterations", "5")
	job.MaxEn = c.str("Maximum relative energy (kcal/mol)", "12.0")
	job.ConfTemp = c.str("Conformational temperature (K)", "298.15")
	job.KeepWorkerData = c.yesNo("Keep worker output files?", false)

	if job.Variant == config.GOATEntropy {
		c.section("GOAT-ENTROPY Specific Parameters")
		job.Entropy = &config.EntropyParams{
			MinDelS:   c.str("Minimum entropy difference (cal/mol/K)", "0.1"),
			ConfDegen: c.str("Conformer degeneracy (AUTO, AUTOMAX, or number)", "AUTO"),
		}
	}

	if job.Variant == config.GOATExplore {
		c.section("GOAT-EXPLORE Specific Parameters")
		job.Explore = &config.ExploreParams{
			FreezeBonds:  c.yesNo("Freeze bonds during uphill step?", true),
			FreezeAngles: c.yesNo("Freeze angles during uphill step?", true),
		}
	}

	c.section("Cyclic Peptide Specific Constraints")
	job.FreezeAmides = c.yesNo("Freeze amide bond chirality (cis/trans)?", true)
	job.FreezeCisTrans = c.yesNo("Freeze double bond stereochemistry?", true)

	c.section("Uphill Step Optimization")
	if c.yesNo("Use faster GFN method for uphill steps?", false) {
		c.p.Say("  Available options: gfnff, gfn2xtb, gfn1xtb, gfn0xtb")
		job.GFNUphill = c.str("GFN method for uphill", "gfn2xtb")
	} else {
		job.GFNUphill = ""
	}

	c.section("Geometry Optimization Parameters")
	job.GeomMaxIter = c.str("Max geometry iterations", "500")
	job.GeomTolE = c.str("Energy tolerance", "5e-6")
	job.GeomTolRMSG = c.str("RMS gradient tolerance", "1e-4")
	job.GeomTolMaxG = c.str("Max gradient tolerance", "3e-4")

	c.section("Molecular Properties")
	job.Charge = c.str("Charge", "0")
	job.Mult = c.str("Multiplicity", "1")

	c.section("SLURM Job Settings")
	job.Slurm.Nodes = c.str("Number of nodes", "1")
	job.Slurm.Walltime = c.str("Wall time (e.g., 72:00:00)", "96:00:00")
	job.Slurm.Memory = c.str("Memory (e.g., 400G)", "400G")
	job.Slurm.Partition = c.str("Partition (leave empty if not needed)", "")
	job.Slurm.ModuleLoad = c.str("Module load command", "OpenMPI/4.1.6-GCC-13.2.0 ORCA/6.1.0")
	job.Slurm.OrcaPath = c.str("ORCA executable path", "/path/to/orca")
	job.Slurm.RSHCommand = c.str("RSH command", "sh")

	if c.err == nil {
		c.p.Say("")
	}
	job.OutputDir = c.str("Output directory for generated files", "goat_inputs")

	return job, c.err
}
