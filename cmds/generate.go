package cmds

import (
	"context"
	"fmt"
	"os"

	glzcli "github.com/go-go-golems/glazed/pkg/cli"
	gcmds "github.com/go-go-golems/glazed/pkg/cmds"
	glayers "github.com/go-go-golems/glazed/pkg/cmds/layers"
	"github.com/go-go-golems/glazed/pkg/cmds/parameters"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/collect"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/goatlayer"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/preset"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/prompt"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/render"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/xyzset"
)

type GenerateCommand struct{ *gcmds.CommandDescription }

type GenerateSettings struct {
	Select      string `glazed.parameter:"select"`
	WritePreset string `glazed.parameter:"write-preset"`
}

func NewGenerateCommand() (*GenerateCommand, error) {
	layer, err := glzcli.NewCommandSettingsLayer()
	if err != nil {
		return nil, err
	}
	cd := gcmds.NewCommandDescription(
		"generate",
		gcmds.WithShort("Interactively generate GOAT input files and sbatch scripts"),
		gcmds.WithFlags(
			parameters.NewParameterDefinition("select", parameters.ParameterTypeString, parameters.WithHelp("Pre-seed the file selection ('all' or space-separated indices), skipping that prompt")),
			parameters.NewParameterDefinition("write-preset", parameters.ParameterTypeString, parameters.WithHelp("Save the collected configuration to this YAML preset file")),
		),
		gcmds.WithLayersList(layer),
	)
	_, err = goatlayer.AddGoatLayerToCommand(cd)
	if err != nil {
		return nil, err
	}
	return &GenerateCommand{cd}, nil
}

func (c *GenerateCommand) Run(ctx context.Context, parsed *glayers.ParsedLayers) error {
	s := &GenerateSettings{}
	if err := parsed.InitializeStruct(glayers.DefaultSlug, s); err != nil {
		return err
	}
	gs, err := goatlayer.GetGoatSettings(parsed)
	if err != nil {
		return err
	}
	console.InitConsole(gs.NoColor)

	p := prompt.NewStdio()
	p.Say(
		"",
		console.Rule(),
		"  ORCA GOAT Input Generator",
		"  For Cyclic Peptide Conformational Search",
		console.Rule(),
		"",
	)

	files, err := xyzset.Discover(gs.InputDir, gs.Extension)
	if err != nil {
		return err
	}

	p.Say(console.Infof("Available XYZ files in %s/:", gs.InputDir))
	for i, f := range files {
		p.Sayf("  %d) %s", i+1, f.Name())
	}
	p.Say("")

	selection := s.Select
	if selection == "" {
		p.Say(
			console.Info("Select XYZ files to process:"),
			"  Enter numbers separated by spaces (e.g., '1 2 3')",
			"  Or enter 'all' to process all files",
		)
		selection, err = p.Line("Selection:")
		if err != nil {
			return err
		}
	}

	selected, warnings, err := xyzset.ParseSelection(selection, files)
	for _, w := range warnings {
		p.Say(console.Warning(w))
	}
	if err != nil {
		return err
	}
	p.Say(console.Successf("Selected %d file(s)", len(selected)), "")

	job, err := collect.New(p).Collect()
	if err != nil {
		return err
	}
	if gs.OutputDir != "" {
		job.OutputDir = gs.OutputDir
	}

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", job.OutputDir, err)
	}
	p.Say(console.Successf("Created output directory: %s", job.OutputDir), "")

	if s.WritePreset != "" {
		if err := preset.Save(s.WritePreset, job); err != nil {
			return err
		}
		p.Say(console.Successf("Saved preset: %s", s.WritePreset), "")
	}

	runner := &render.Runner{Out: os.Stdout}
	submitPath, err := runner.RenderAll(job, selected)
	if err != nil {
		return err
	}

	printSummary(p, job, len(selected), submitPath)
	return nil
}

func printSummary(p *prompt.Prompter, job config.Job, fileCount int, submitPath string) {
	p.Say(
		"",
		console.Rule(),
		console.Success("Generation Complete!"),
		console.Rule(),
		"",
		console.Info("Summary:"),
	)
	p.Sayf("  GOAT variant: %s", job.Variant.Keyword())
	p.Sayf("  Method: %s", job.Method)
	p.Sayf("  Files processed: %d", fileCount)
	p.Sayf("  Output directory: %s", job.OutputDir)
	p.Say(
		"",
		console.Successf("Created submission helper script: %s", submitPath),
		"",
		console.Info("=== How to Submit Jobs ==="),
		"",
		"Option 1: Submit all jobs at once (RECOMMENDED)",
	)
	p.Sayf("  cd %s", job.OutputDir)
	p.Say(
		"  ./submit_all_jobs.sh",
		"",
		"Option 2: Submit individual jobs",
	)
	p.Sayf("  cd %s", job.OutputDir)
	p.Sayf("  sbatch run_<basename>_%s.sh", job.Variant.Slug())
	p.Say(
		"",
		"Option 3: Submit all jobs with a one-liner",
	)
	p.Sayf("  cd %s && for script in run_*.sh; do sbatch $script; done", job.OutputDir)
	p.Say(
		"",
		console.Info("=== Monitor Jobs ==="),
		"  squeue -u $USER                    # View all your jobs",
		"  squeue -u $USER --start            # View estimated start times",
		"  tail -f slurm-<jobid>.out          # Watch job output in real-time",
		"",
		console.Warning("Remember to:"),
		"  1. Verify the ORCA path in the sbatch scripts",
		"  2. Check module names match your cluster",
		"  3. Adjust memory/time limits as needed",
		"  4. Copy XYZ files to the output directory or adjust paths",
		"",
	)
}

var _ gcmds.BareCommand = &GenerateCommand{}
