package config

import "strings"

// Job carries every setting needed to render one batch of GOAT inputs and
// submission scripts. Numeric-looking fields stay strings: they pass through
// into rendered text verbatim and are never computed with.
type Job struct {
	Variant Variant `yaml:"variant"`

	Method         string `yaml:"method"`
	SolventKeyword string `yaml:"solvent_keyword"`
	ExtraKeywords  string `yaml:"extra_keywords"`

	NProcs      string `yaml:"nprocs"`
	NWorkers    string `yaml:"nworkers"`
	MaxCoresOpt string `yaml:"max_cores_opt"`

	MaxIter        string `yaml:"max_iter"`
	MinGlobalIter  string `yaml:"min_global_iter"`
	MaxEn          string `yaml:"max_en"`
	ConfTemp       string `yaml:"conf_temp"`
	KeepWorkerData bool   `yaml:"keep_worker_data"`

	// Exactly one of these is non-nil, matching the variant.
	Entropy *EntropyParams `yaml:"entropy,omitempty"`
	Explore *ExploreParams `yaml:"explore,omitempty"`

	FreezeAmides   bool `yaml:"freeze_amides"`
	FreezeCisTrans bool `yaml:"freeze_cistrans"`

	// GFNUphill is empty when the faster uphill method is disabled.
	GFNUphill string `yaml:"gfn_uphill,omitempty"`

	GeomMaxIter string `yaml:"geom_max_iter"`
	GeomTolE    string `yaml:"geom_tol_e"`
	GeomTolRMSG string `yaml:"geom_tol_rmsg"`
	GeomTolMaxG string `yaml:"geom_tol_maxg"`

	Charge string `yaml:"charge"`
	Mult   string `yaml:"mult"`

	Slurm SlurmParams `yaml:"slurm"`

	OutputDir string `yaml:"output_dir"`
}

// EntropyParams are the GOAT-ENTROPY convergence settings.
type EntropyParams struct {
	MinDelS   string `yaml:"min_dels"`
	ConfDegen string `yaml:"conf_degen"`
}

// ExploreParams control the GOAT-EXPLORE uphill perturbation step.
type ExploreParams struct {
	FreezeBonds  bool `yaml:"freeze_bonds"`
	FreezeAngles bool `yaml:"freeze_angles"`
}

// SlurmParams are the sbatch resource directives and site settings.
type SlurmParams struct {
	Nodes      string `yaml:"nodes"`
	Walltime   string `yaml:"walltime"`
	Memory     string `yaml:"memory"`
	Partition  string `yaml:"partition,omitempty"`
	ModuleLoad string `yaml:"module_load"`
	OrcaPath   string `yaml:"orca_path"`
	RSHCommand string `yaml:"rsh_command"`
}

// Defaults returns a Job populated with the stock answers of every prompt.
func Defaults() Job {
	return Job{
		Variant:        GOAT,
		Method:         "XTB2",
		SolventKeyword: "",
		ExtraKeywords:  "NORMALOPT",
		NProcs:         "200",
		NWorkers:       "25",
		MaxCoresOpt:    "32",
		MaxIter:        "256",
		MinGlobalIter:  "5",
		MaxEn:          "12.0",
		ConfTemp:       "298.15",
		KeepWorkerData: false,
		FreezeAmides:   true,
		FreezeCisTrans: true,
		GeomMaxIter:    "500",
		GeomTolE:       "5e-6",
		GeomTolRMSG:    "1e-4",
		GeomTolMaxG:    "3e-4",
		Charge:         "0",
		Mult:           "1",
		Slurm: SlurmParams{
			Nodes:      "1",
			Walltime:   "96:00:00",
			Memory:     "400G",
			Partition:  "",
			ModuleLoad: "OpenMPI/4.1.6-GCC-13.2.0 ORCA/6.1.0",
			OrcaPath:   "/path/to/orca",
			RSHCommand: "sh",
		},
		OutputDir: "goat_inputs",
	}
}

// DefaultEntropyParams returns the stock GOAT-ENTROPY settings.
func DefaultEntropyParams() *EntropyParams {
	return &EntropyParams{MinDelS: "0.1", ConfDegen: "AUTO"}
}

// DefaultExploreParams returns the stock GOAT-EXPLORE settings.
func DefaultExploreParams() *ExploreParams {
	return &ExploreParams{FreezeBonds: true, FreezeAngles: true}
}

// CombineKeywords joins the optimization level with optional extra keywords.
func CombineKeywords(optLevel, additional string) string {
	additional = strings.TrimSpace(additional)
	if additional == "" {
		return optLevel
	}
	return optLevel + " " + additional
}

// SolventWrapper embeds a solvent name in the CPCM keyword.
func SolventWrapper(solvent string) string {
	return "CPCM(" + solvent + ")"
}
