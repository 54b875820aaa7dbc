// Package adapter provides thin adapters over the core engine.
// The CLI adapter loads a scenario, runs the engine and renders a report.
package adapter

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"retrofit-calc/adapters/scenario"
	"retrofit-calc/core/engine"
	"retrofit-calc/core/output"
	"retrofit-calc/core/types"
)

// CLIAdapter is a THIN wrapper around the core engine.
// It handles input/output only - all logic is in the engine.
type CLIAdapter struct {
	engine     *engine.Engine
	loader     *scenario.Loader
	formatters *output.Registry
	logger     *zap.Logger
	output     io.Writer
	currency   types.Currency
	version    string
}

// NewCLIAdapter creates a new CLI adapter
func NewCLIAdapter(eng *engine.Engine, loader *scenario.Loader, formatters *output.Registry, logger *zap.Logger) *CLIAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIAdapter{
		engine:     eng,
		loader:     loader,
		formatters: formatters,
		logger:     logger.Named("cli"),
		output:     os.Stdout,
		currency:   types.CurrencyIDR,
		version:    "dev",
	}
}

// SetOutput sets the output writer
func (a *CLIAdapter) SetOutput(w io.Writer) {
	a.output = w
}

// SetCurrency sets the currency label used in reports
func (a *CLIAdapter) SetCurrency(c types.Currency) {
	a.currency = c
}

// SetVersion sets the version stamped into report metadata
func (a *CLIAdapter) SetVersion(v string) {
	a.version = v
}

// CLIRequest is the CLI input
type CLIRequest struct {
	// Path to a scenario file. Empty means the default scenario.
	Path string

	// Edits are "section.field=value" changes applied after loading
	Edits []string

	// Output options
	Format            string
	Locale            string
	ShowBreakdown     bool
	ShowInterventions bool
}

// Scenario loads the requested scenario and applies its edits
func (a *CLIAdapter) Scenario(req *CLIRequest) (*scenario.Scenario, error) {
	s := a.loader.Default()
	if req.Path != "" {
		loaded, err := a.loader.Load(req.Path)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	for _, edit := range req.Edits {
		if err := a.loader.ApplyEdit(s, edit); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run executes the calculation and writes the report
func (a *CLIAdapter) Run(ctx context.Context, req *CLIRequest) (*output.Report, error) {
	// Resolve the formatter first so a bad --format fails before any work
	formatter, err := a.formatters.Get(req.Format)
	if err != nil {
		return nil, err
	}

	s, err := a.Scenario(req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	result := a.engine.Evaluate(s.Building, s.Tariffs, s.Selection, s.Investments)
	for _, w := range s.Warnings {
		result.Assumptions = append(result.Assumptions, types.Assumption{Category: "input", Description: w})
	}

	in := output.Input{
		Building:    s.Building,
		Tariffs:     s.Tariffs,
		Selection:   s.Selection,
		Investments: s.Investments,
	}
	report, err := output.NewReport(s.Name, a.currency, in, result, started, a.version)
	if err != nil {
		return nil, err
	}

	a.logger.Info("calculation finished",
		zap.String("scenario", s.Name),
		zap.String("run_id", report.Metadata.RunID),
		zap.Float64("savings_percent", result.TotalSavingsPercent))

	opts := output.Options{
		Numbers:           output.NewNumberFormat(req.Locale),
		ShowBreakdown:     req.ShowBreakdown,
		ShowInterventions: req.ShowInterventions,
	}
	if err := formatter.Render(a.output, report, opts); err != nil {
		return nil, err
	}
	return report, nil
}
