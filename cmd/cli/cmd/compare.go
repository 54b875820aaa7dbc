// Package cmd - compare command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	adapter "retrofit-calc/adapters/cli"
	"retrofit-calc/core/diff"
	"retrofit-calc/core/engine"
	"retrofit-calc/core/output"
	"retrofit-calc/core/types"
	"retrofit-calc/core/ui"
	"retrofit-calc/internal/config"
	"retrofit-calc/internal/logging"
)

var compareJSON bool

// compareCmd compares two scenarios
var compareCmd = &cobra.Command{
	Use:   "compare <before> <after>",
	Short: "Compare the results of two scenarios",
	Long: `Run two scenarios and show how savings, investment and each
intervention's effective percentage differ.

Examples:
  retrofit-calc compare current.hcl proposal.hcl
  retrofit-calc compare current.hcl proposal.toml --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "print the diff as JSON")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	a := newAdapter(cmd.OutOrStdout())
	eng := engine.NewEngine(cfg.EngineConfig(), logging.Logger)

	results := make([]*types.CalculationResult, 0, 2)
	names := make([]string, 0, 2)
	for _, path := range args {
		s, err := a.Scenario(&adapter.CLIRequest{Path: path})
		if err != nil {
			return err
		}
		results = append(results, eng.Evaluate(s.Building, s.Tariffs, s.Selection, s.Investments))
		names = append(names, s.Name)
	}

	d := diff.NewDiffer(0).Diff(results[0], results[1])

	if compareJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	n := output.NewNumberFormat(cfg.Output.Locale)
	cur := cfg.Currency.String()
	out := ui.NewAutoWriter(cmd.OutOrStdout())
	out.Header(fmt.Sprintf("%s → %s", names[0], names[1]))

	if !d.HasChanges() {
		out.Info("No differences")
		return nil
	}

	summary := out.NewTable("Metric", names[0], names[1], "Change").AlignRight(1, 2, 3)
	summary.AddRow("Savings", n.Percent(d.SavingsPercent.Before), n.Percent(d.SavingsPercent.After), signed(n.Percent(d.SavingsPercent.Delta), d.SavingsPercent.Delta))
	summary.AddRow("Energy (MWh/yr)", n.Energy(d.EnergySavings.Before), n.Energy(d.EnergySavings.After), signed(n.Energy(d.EnergySavings.Delta), d.EnergySavings.Delta))
	summary.AddRow("CO₂ (t/yr)", n.Energy(d.CO2Reduction.Before), n.Energy(d.CO2Reduction.After), signed(n.Energy(d.CO2Reduction.Delta), d.CO2Reduction.Delta))
	summary.AddRow("Cost savings ("+cur+")", n.Money(d.CostSavings.Before), n.Money(d.CostSavings.After), signed(n.Money(d.CostSavings.Delta), d.CostSavings.Delta.InexactFloat64()))
	summary.AddRow("Investment ("+cur+")", n.Money(d.TotalInvestment.Before), n.Money(d.TotalInvestment.After), signed(n.Money(d.TotalInvestment.Delta), d.TotalInvestment.Delta.InexactFloat64()))
	summary.AddRow("Payback (years)", n.Float(d.PaybackPeriod.Before, 1), n.Float(d.PaybackPeriod.After, 1), signed(n.Float(d.PaybackPeriod.Delta, 1), d.PaybackPeriod.Delta))
	summary.Render()

	out.Header("Interventions")
	interventions := out.NewTable("Intervention", "Change", names[0], names[1]).AlignRight(2, 3)
	for _, i := range d.Interventions {
		if i.ChangeType == diff.ChangeUnchanged {
			continue
		}
		interventions.AddRow(i.Intervention.String(), i.ChangeType.String(), n.Percent(i.Before.EffectivePercent), n.Percent(i.After.EffectivePercent))
	}
	if interventions.Len() > 0 {
		interventions.Render()
	} else {
		out.Dim("Selection unchanged")
	}

	if len(d.Investments) > 0 {
		out.Header("Catalog")
		catalog := out.NewTable("Option", names[0], names[1]).AlignRight(1, 2)
		for _, i := range d.Investments {
			catalog.AddRow(i.Option.String(), n.Money(i.Before), n.Money(i.After))
		}
		catalog.Render()
	}
	return nil
}

// signed prefixes positive deltas with "+"
func signed(text string, v float64) string {
	if v > 0 {
		return "+" + text
	}
	return text
}
