package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/go-go-golems/glazed/pkg/cli"
	"github.com/go-go-golems/glazed/pkg/cmds/layers"
	"github.com/go-go-golems/glazed/pkg/cmds/logging"
	"github.com/go-go-golems/glazed/pkg/cmds/middlewares"
	"github.com/go-go-golems/glazed/pkg/cmds/parameters"
	"github.com/go-go-golems/glazed/pkg/help"
	help_cmd "github.com/go-go-golems/glazed/pkg/help/cmd"
	"github.com/spf13/cobra"

	clay "github.com/go-go-golems/clay/pkg"

	appcmds "github.com/Chemical-Biology-STP/orca-goat-generator/cmds"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	appdoc "github.com/Chemical-Biology-STP/orca-goat-generator/pkg/doc"
)

var version = "dev"

func getMiddlewares(parsedLayers *layers.ParsedLayers, cmd *cobra.Command, args []string) ([]middlewares.Middleware, error) {
	commandSettings := &cli.CommandSettings{}
	err := parsedLayers.InitializeStruct(cli.CommandSettingsSlug, commandSettings)
	if err != nil {
		return nil, err
	}

	mw_ := []middlewares.Middleware{
		middlewares.ParseFromCobraCommand(cmd,
			parameters.WithParseStepSource("cobra"),
		),
		middlewares.GatherArguments(args,
			parameters.WithParseStepSource("arguments"),
		),
	}

	mw_ = append(mw_,
		middlewares.GatherFlagsFromViper(parameters.WithParseStepSource("viper")),
		middlewares.SetFromDefaults(parameters.WithParseStepSource("defaults")),
	)

	return mw_, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "orca-goat-generator",
		Short:         "Generate ORCA GOAT input files and Slurm submission scripts",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := logging.InitLoggerFromViper()
			cobra.CheckErr(err)
		},
	}

	clay.InitViper("orca-goat-generator", rootCmd)

	// Help system
	hs := help.NewHelpSystem()
	_ = appdoc.AddDocToHelpSystem(hs)
	help_cmd.SetupCobraRootCommand(hs, rootCmd)

	opts := []cli.CobraOption{
		cli.WithParserConfig(cli.CobraParserConfig{
			MiddlewaresFunc: getMiddlewares,
		}),
	}

	// Register commands
	if gc, err := appcmds.NewGenerateCommand(); err == nil {
		cmd, err := cli.BuildCobraCommand(gc, opts...)
		cobra.CheckErr(err)
		rootCmd.AddCommand(cmd)
	} else {
		cobra.CheckErr(err)
	}

	if rc, err := appcmds.NewRenderCommand(); err == nil {
		cmd, err := cli.BuildCobraCommand(rc, opts...)
		cobra.CheckErr(err)
		rootCmd.AddCommand(cmd)
	} else {
		cobra.CheckErr(err)
	}

	if vc, err := appcmds.NewVariantsCommand(); err == nil {
		cmd, err := cli.BuildCobraCommand(vc, opts...)
		cobra.CheckErr(err)
		rootCmd.AddCommand(cmd)
	} else {
		cobra.CheckErr(err)
	}

	// Ctrl-C during a prompt is a clean abort, not a crash.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println()
		fmt.Println(console.Warning("Interrupted by user"))
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.Errorf("An error occurred: %v", err))
		os.Exit(1)
	}
}
