package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

type mdWriter struct {
	w   io.Writer
	err error
}

func (m *mdWriter) line(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format+"\n", args...)
}

func (m *mdWriter) row(cells ...string) {
	m.line("| %s |", strings.Join(cells, " | "))
}

// Render implements Formatter
func (f *MarkdownFormatter) Render(w io.Writer, report *Report, opts Options) error {
	md := &mdWriter{w: w}
	r := report.Result
	n := opts.Numbers
	cur := string(report.Currency)

	md.line("# Retrofit Savings Report: %s", report.Scenario)
	md.line("")
	md.line("**Energy savings:** %s MWh/yr (%s)  ", n.Energy(r.EnergySavings), n.Percent(r.TotalSavingsPercent))
	md.line("**CO₂ reduction:** %s t CO₂e/yr  ", n.Energy(r.CO2Reduction))
	md.line("**Cost savings:** %s %s/yr  ", cur, n.Money(r.CostSavings))
	md.line("**Total investment:** %s %s  ", cur, n.Money(r.TotalInvestment))
	md.line("**Payback period:** %s", paybackText(n, r.PaybackPeriod))
	md.line("")

	md.line("## Building")
	md.line("")
	md.row("Quantity", "Value")
	md.row("---", "---:")
	md.row("Building area", n.Float(r.BuildingArea, 2)+" m²")
	md.row("Roof area", n.Float(r.RoofArea, 2)+" m²")
	md.row("Window area", n.Float(r.WindowArea, 2)+" m²")
	md.row("Baseline energy", n.Energy(r.AnnualEnergy)+" MWh/yr")
	md.line("")

	if opts.ShowInterventions {
		md.line("## Interventions")
		md.line("")
		md.row("Intervention", "Base", "Effective", "Rule")
		md.row("---", "---:", "---:", "---")
		for _, e := range r.Interventions {
			if e.Selected {
				md.row("`"+e.Intervention.String()+"`", n.Percent(e.BasePercent), n.Percent(e.EffectivePercent), e.Reason)
			}
		}
		md.line("")
	}

	if len(r.InvestmentLines) > 0 {
		md.line("## Investment")
		md.line("")
		md.row("Option", "Cost ("+cur+")")
		md.row("---", "---:")
		for _, l := range r.InvestmentLines {
			md.row("`"+l.Option.String()+"`", n.Money(l.Cost))
		}
		md.row("**Total**", "**"+n.Money(r.TotalInvestment)+"**")
		md.line("")
	}

	md.line("## Savings by device category")
	md.line("")
	if opts.ShowBreakdown {
		md.row("Category", "Weight", "Baseline MWh", "Saved MWh", "Projected MWh")
		md.row("---", "---:", "---:", "---:", "---:")
		for _, b := range r.Breakdown {
			md.row(b.Category.String(), n.Percent(b.Weight*100), n.Energy(b.Baseline), n.Energy(b.Savings), n.Energy(b.Projected))
		}
	} else {
		md.row("Category", "Weight", "Saved MWh")
		md.row("---", "---:", "---:")
		for _, b := range r.Breakdown {
			md.row(b.Category.String(), n.Percent(b.Weight*100), n.Energy(b.Savings))
		}
	}
	md.line("")

	if len(r.Assumptions) > 0 {
		md.line("## Assumptions")
		md.line("")
		for _, a := range r.Assumptions {
			md.line("- **%s:** %s", a.Category, a.Description)
		}
		md.line("")
	}

	md.line("---")
	md.line("_Run `%s` · input `%s` · %s · v%s_",
		report.Metadata.RunID, shortHash(report.Metadata.InputHash), report.Metadata.Duration, report.Metadata.Version)

	return md.err
}
