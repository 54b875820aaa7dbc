// Package cmd - estimate command
package cmd

import (
	"github.com/spf13/cobra"

	adapter "retrofit-calc/adapters/cli"
	"retrofit-calc/internal/config"
)

var (
	outputFormat  string
	outputLocale  string
	edits         []string
	showBreakdown bool
	explain       bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [scenario-file]",
	Short: "Estimate savings for a retrofit scenario",
	Long: `Compute energy, emission and cost savings, investment and payback.

The scenario file may be .hcl, .json or .toml. Without a file the reference
building is used. Any field can be changed with --set section.field=value.

Examples:
  retrofit-calc estimate
  retrofit-calc estimate tower.hcl
  retrofit-calc estimate --set building.roof_type=gable --set interventions.solar_glass=true
  retrofit-calc estimate tower.toml --format markdown --locale en --breakdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	addScenarioFlags(estimateCmd)
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVar(&outputLocale, "locale", "", "number locale (id, en)")
	estimateCmd.Flags().BoolVarP(&showBreakdown, "breakdown", "b", false, "show baseline and projected energy per device category")
	estimateCmd.Flags().BoolVarP(&explain, "explain", "e", false, "show how each intervention's percentage was derived")
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&edits, "set", "s", nil, "override a scenario field (section.field=value), repeatable")
}

func scenarioRequest(args []string) *adapter.CLIRequest {
	req := &adapter.CLIRequest{Edits: edits}
	if len(args) > 0 {
		req.Path = args[0]
	}
	return req
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	req := scenarioRequest(args)
	req.Format = cfg.Output.Format
	req.Locale = cfg.Output.Locale
	req.ShowBreakdown = cfg.Output.ShowBreakdown
	req.ShowInterventions = cfg.Output.ShowInterventions

	if cmd.Flags().Changed("format") {
		req.Format = outputFormat
	}
	if cmd.Flags().Changed("locale") {
		req.Locale = outputLocale
	}
	if cmd.Flags().Changed("breakdown") {
		req.ShowBreakdown = showBreakdown
	}
	if cmd.Flags().Changed("explain") {
		req.ShowInterventions = explain
	}

	_, err := newAdapter(cmd.OutOrStdout()).Run(cmd.Context(), req)
	return err
}
