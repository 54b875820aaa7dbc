// Package cmd provides the CLI commands for retrofit-calc.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	adapter "retrofit-calc/adapters/cli"
	"retrofit-calc/adapters/scenario"
	"retrofit-calc/core/engine"
	"retrofit-calc/core/output"
	"retrofit-calc/internal/config"
	"retrofit-calc/internal/logging"
)

// Version is set at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "retrofit-calc",
	Short: "Estimate savings and payback of building energy retrofits",
	Long: `retrofit-calc estimates the energy, emission and cost savings of
retrofitting an office building, together with the capital investment and
simple payback period of the selected interventions.

Examples:
  retrofit-calc estimate
  retrofit-calc estimate tower.hcl --explain
  retrofit-calc estimate --set interventions.led_lights=true --format json
  retrofit-calc catalog --set building.length=50`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func initConfig() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newAdapter wires the engine, scenario loader and formatters from config
func newAdapter(out io.Writer) *adapter.CLIAdapter {
	cfg := config.Get()

	eng := engine.NewEngine(cfg.EngineConfig(), logging.Logger)
	loader := scenario.NewLoader(logging.Logger, cfg.Tariffs())

	a := adapter.NewCLIAdapter(eng, loader, output.DefaultRegistry(), logging.Logger)
	a.SetOutput(out)
	a.SetCurrency(cfg.Currency)
	a.SetVersion(Version)
	return a
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "retrofit-calc version %s\n", Version)
	},
}
