// Package cmd - catalog command
package cmd

import (
	"github.com/spf13/cobra"

	"retrofit-calc/core/engine"
	"retrofit-calc/core/output"
	"retrofit-calc/core/types"
	"retrofit-calc/core/ui"
	"retrofit-calc/internal/config"
	"retrofit-calc/internal/logging"
)

var catalogLocale string

// catalogCmd prints the effective investment catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog [scenario-file]",
	Short: "Print the investment catalog for a scenario",
	Long: `Print the capital cost of every intervention option after the
geometry-based defaults for solar glass and reflective roof were applied.

Examples:
  retrofit-calc catalog
  retrofit-calc catalog --set building.length=50
  retrofit-calc catalog tower.hcl --locale en`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	addScenarioFlags(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogLocale, "locale", "", "number locale (id, en)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	s, err := newAdapter(cmd.OutOrStdout()).Scenario(scenarioRequest(args))
	if err != nil {
		return err
	}

	eng := engine.NewEngine(cfg.EngineConfig(), logging.Logger)
	result := eng.Evaluate(s.Building, s.Tariffs, s.Selection, s.Investments)

	locale := cfg.Output.Locale
	if cmd.Flags().Changed("locale") {
		locale = catalogLocale
	}
	n := output.NewNumberFormat(locale)

	out := ui.NewAutoWriter(cmd.OutOrStdout())
	out.Header("Investment catalog: " + s.Name)

	table := out.NewTable("Option", "Cost ("+cfg.Currency.String()+")", "Source", "Selected").AlignRight(1)
	selected := make(map[types.InvestmentOption]bool, len(result.InvestmentLines))
	for _, l := range result.InvestmentLines {
		selected[l.Option] = true
	}
	for _, o := range types.InvestmentOptions() {
		source := "default"
		if result.Investments.IsOverridden(o) {
			source = "custom"
		}
		mark := ""
		if selected[o] {
			mark = "✓"
		}
		table.AddRow(o.String(), n.Money(result.Investments.Cost(o)), source, mark)
	}
	table.Render()

	for _, w := range s.Warnings {
		out.Warning(w)
	}
	return nil
}
