package goatlayer

import (
	"fmt"

	glzcms "github.com/go-go-golems/glazed/pkg/cmds"
	glzlayers "github.com/go-go-golems/glazed/pkg/cmds/layers"
	"github.com/go-go-golems/glazed/pkg/cmds/parameters"
)

const GoatLayerSlug = "goat"

type GoatSettings struct {
	InputDir  string `glazed.parameter:"input-dir"`
	OutputDir string `glazed.parameter:"output-dir"`
	Extension string `glazed.parameter:"ext"`
	NoColor   bool   `glazed.parameter:"no-color"`
}

// NewGoatLayer defines a reusable parameter layer shared by the generate
// and render commands.
func NewGoatLayer() (glzlayers.ParameterLayer, error) {
	return glzlayers.NewParameterLayer(
		GoatLayerSlug,
		"GOAT generator settings",
		glzlayers.WithParameterDefinitions(
			parameters.NewParameterDefinition(
				"input-dir",
				parameters.ParameterTypeString,
				parameters.WithHelp("Directory containing geometry files"),
				parameters.WithDefault("xyzs"),
			),
			parameters.NewParameterDefinition(
				"output-dir",
				parameters.ParameterTypeString,
				parameters.WithHelp("Output directory (overrides the prompted/preset value)"),
				parameters.WithDefault(""),
			),
			parameters.NewParameterDefinition(
				"ext",
				parameters.ParameterTypeString,
				parameters.WithHelp("Geometry file extension"),
				parameters.WithDefault(".xyz"),
			),
			parameters.NewParameterDefinition(
				"no-color",
				parameters.ParameterTypeBool,
				parameters.WithHelp("Disable colored output"),
				parameters.WithDefault(false),
			),
		),
	)
}

// AddGoatLayerToCommand attaches the layer to a Glazed command description.
func AddGoatLayerToCommand(c glzcms.Command) (glzcms.Command, error) {
	l, err := NewGoatLayer()
	if err != nil {
		return nil, err
	}
	c.Description().Layers.Set(GoatLayerSlug, l)
	return c, nil
}

// GetGoatSettings returns parsed goat settings from the ParsedLayers.
func GetGoatSettings(parsed *glzlayers.ParsedLayers) (*GoatSettings, error) {
	var s GoatSettings
	if err := parsed.InitializeStruct(GoatLayerSlug, &s); err != nil {
		return nil, fmt.Errorf("failed to parse goat settings: %w", err)
	}
	return &s, nil
}
