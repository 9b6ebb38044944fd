package cmds

import (
	"context"

	glzcli "github.com/go-go-golems/glazed/pkg/cli"
	gcmds "github.com/go-go-golems/glazed/pkg/cmds"
	glayers "github.com/go-go-golems/glazed/pkg/cmds/layers"
	"github.com/go-go-golems/glazed/pkg/middlewares"
	"github.com/go-go-golems/glazed/pkg/settings"
	"github.com/go-go-golems/glazed/pkg/types"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

type VariantsCommand struct{ *gcmds.CommandDescription }

func NewVariantsCommand() (*VariantsCommand, error) {
	glazedLayers, err := settings.NewGlazedParameterLayers()
	if err != nil {
		return nil, err
	}
	commandLayer, err := glzcli.NewCommandSettingsLayer()
	if err != nil {
		return nil, err
	}
	cd := gcmds.NewCommandDescription(
		"variants",
		gcmds.WithShort("List the available GOAT search variants"),
		gcmds.WithLayersList(glazedLayers, commandLayer),
	)
	return &VariantsCommand{cd}, nil
}

// GlazeCommand: output structured rows
func (c *VariantsCommand) RunIntoGlazeProcessor(ctx context.Context, parsed *glayers.ParsedLayers, gp middlewares.Processor) error {
	for i, v := range config.Variants() {
		row := types.NewRow(
			types.MRP("choice", i+1),
			types.MRP("keyword", v.Keyword()),
			types.MRP("slug", v.Slug()),
			types.MRP("summary", v.Summary()),
		)
		if err := gp.AddRow(ctx, row); err != nil {
			return err
		}
	}
	return nil
}

var _ gcmds.GlazeCommand = &VariantsCommand{}
