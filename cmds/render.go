package cmds

import (
	"context"
	"fmt"
	"os"

	glzcli "github.com/go-go-golems/glazed/pkg/cli"
	gcmds "github.com/go-go-golems/glazed/pkg/cmds"
	glayers "github.com/go-go-golems/glazed/pkg/cmds/layers"
	"github.com/go-go-golems/glazed/pkg/cmds/parameters"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/goatlayer"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/preset"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/prompt"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/render"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/xyzset"
)

type RenderCommand struct{ *gcmds.CommandDescription }

type RenderSettings struct {
	Preset string `glazed.parameter:"preset"`
	Select string `glazed.parameter:"select"`
}

func NewRenderCommand() (*RenderCommand, error) {
	layer, err := glzcli.NewCommandSettingsLayer()
	if err != nil {
		return nil, err
	}
	cd := gcmds.NewCommandDescription(
		"render",
		gcmds.WithShort("Render GOAT inputs non-interactively from a YAML preset"),
		gcmds.WithFlags(
			parameters.NewParameterDefinition("preset", parameters.ParameterTypeString, parameters.WithRequired(true), parameters.WithShortFlag("p"), parameters.WithHelp("YAML preset file with the full job configuration")),
			parameters.NewParameterDefinition("select", parameters.ParameterTypeString, parameters.WithDefault("all"), parameters.WithHelp("File selection: 'all' or space-separated 1-based indices")),
		),
		gcmds.WithLayersList(layer),
	)
	_, err = goatlayer.AddGoatLayerToCommand(cd)
	if err != nil {
		return nil, err
	}
	return &RenderCommand{cd}, nil
}

func (c *RenderCommand) Run(ctx context.Context, parsed *glayers.ParsedLayers) error {
	s := &RenderSettings{}
	if err := parsed.InitializeStruct(glayers.DefaultSlug, s); err != nil {
		return err
	}
	gs, err := goatlayer.GetGoatSettings(parsed)
	if err != nil {
		return err
	}
	console.InitConsole(gs.NoColor)
	p := prompt.NewStdio()

	job, err := preset.Load(s.Preset)
	if err != nil {
		return err
	}
	if gs.OutputDir != "" {
		job.OutputDir = gs.OutputDir
	}
	if job.OutputDir == "" {
		job.OutputDir = "goat_inputs"
	}

	files, err := xyzset.Discover(gs.InputDir, gs.Extension)
	if err != nil {
		return err
	}
	selected, warnings, err := xyzset.ParseSelection(s.Select, files)
	for _, w := range warnings {
		p.Say(console.Warning(w))
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", job.OutputDir, err)
	}

	runner := &render.Runner{Out: os.Stdout}
	submitPath, err := runner.RenderAll(job, selected)
	if err != nil {
		return err
	}
	p.Say(
		"",
		console.Successf("Rendered %d job(s) into %s", len(selected), job.OutputDir),
		console.Successf("Created submission helper script: %s", submitPath),
	)
	return nil
}

var _ gcmds.BareCommand = &RenderCommand{}
