package output

import (
	"fmt"
	"io"

	"retrofit-calc/core/types"
	"retrofit-calc/core/ui"
)

// CLIFormatter renders a terminal report
type CLIFormatter struct {
	// NoColor forces plain output even on a terminal
	NoColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{}
}

// Format implements Formatter
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

func (f *CLIFormatter) writer(w io.Writer) *ui.Writer {
	if f.NoColor {
		return ui.NewWriter(w, true)
	}
	return ui.NewAutoWriter(w)
}

// Render implements Formatter
func (f *CLIFormatter) Render(w io.Writer, report *Report, opts Options) error {
	out := f.writer(w)
	r := report.Result
	n := opts.Numbers
	cur := string(report.Currency)

	out.Header("Retrofit Savings Report: " + report.Scenario)

	box := out.NewSummaryBox("Annual impact")
	box.Add("Energy savings", fmt.Sprintf("%s MWh (%s)", n.Energy(r.EnergySavings), n.Percent(r.TotalSavingsPercent)))
	box.Add("CO₂ reduction", n.Energy(r.CO2Reduction)+" t CO₂e")
	box.Add("Cost savings", cur+" "+n.Money(r.CostSavings))
	box.Add("Total investment", cur+" "+n.Money(r.TotalInvestment))
	box.Add("Payback period", paybackText(n, r.PaybackPeriod))
	box.Render()

	out.Header("Building")
	building := out.NewTable("Quantity", "Value").AlignRight(1)
	building.AddRow("Building area", n.Float(r.BuildingArea, 2)+" m²")
	building.AddRow("Roof area", n.Float(r.RoofArea, 2)+" m²")
	building.AddRow("Window area", n.Float(r.WindowArea, 2)+" m²")
	building.AddRow("Baseline energy", n.Energy(r.AnnualEnergy)+" MWh/yr")
	building.Render()

	if opts.ShowInterventions {
		out.Header("Interventions")
		table := out.NewTable("Intervention", "Base", "Effective", "Rule").AlignRight(1, 2)
		for _, e := range r.Interventions {
			if !e.Selected {
				continue
			}
			table.AddRow(e.Intervention.String(), n.Percent(e.BasePercent), n.Percent(e.EffectivePercent), e.Reason)
		}
		if table.Len() == 0 {
			out.Dim("No interventions selected")
		} else {
			table.Render()
		}
	}

	if len(r.InvestmentLines) > 0 {
		out.Header("Investment")
		table := out.NewTable("Option", "Cost ("+cur+")").AlignRight(1)
		for _, l := range r.InvestmentLines {
			table.AddRow(l.Option.String(), n.Money(l.Cost))
		}
		table.AddRow("TOTAL", n.Money(r.TotalInvestment))
		table.Render()
	}

	out.Header("Savings by device category")
	if opts.ShowBreakdown {
		table := out.NewTable("Category", "Weight", "Baseline MWh", "Saved MWh", "Projected MWh").AlignRight(1, 2, 3, 4)
		for _, b := range r.Breakdown {
			table.AddRow(b.Category.String(), n.Percent(b.Weight*100), n.Energy(b.Baseline), n.Energy(b.Savings), n.Energy(b.Projected))
		}
		table.Render()
	} else {
		table := out.NewTable("Category", "Weight", "Saved MWh").AlignRight(1, 2)
		for _, c := range types.Categories() {
			table.AddRow(c.String(), n.Percent(c.Weight()*100), n.Energy(r.SavingsByCategory[c]))
		}
		table.Render()
	}

	if len(r.Assumptions) > 0 {
		out.Header("Assumptions")
		for _, a := range r.Assumptions {
			out.Warning(fmt.Sprintf("[%s] %s", a.Category, a.Description))
		}
	}

	out.Line("")
	out.Dim(fmt.Sprintf("run %s · input %s · %s · v%s",
		report.Metadata.RunID, shortHash(report.Metadata.InputHash), report.Metadata.Duration, report.Metadata.Version))
	return nil
}

func paybackText(n NumberFormat, years float64) string {
	if years <= 0 {
		return "n/a"
	}
	return n.Float(years, 1) + " years"
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
