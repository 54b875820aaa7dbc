// Package output provides output formatting interfaces.
// This package produces human and machine-readable reports of a calculation.
package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"retrofit-calc/core/determinism"
	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report, opts Options) error
}

// Options control what a formatter includes
type Options struct {
	// Numbers formats quantities and money
	Numbers NumberFormat

	// ShowBreakdown adds baseline and projected energy per category
	ShowBreakdown bool

	// ShowInterventions adds the per-intervention explanation
	ShowInterventions bool
}

// Input is the scenario a report was computed from
type Input struct {
	Building    types.BuildingParameters    `json:"building"`
	Tariffs     types.TariffParameters      `json:"tariffs"`
	Selection   types.InterventionSelection `json:"interventions"`
	Investments types.InvestmentCatalog     `json:"investments"`
}

// Report is a calculation result with the context needed to present it
type Report struct {
	// Scenario names the input, usually the file it came from
	Scenario string `json:"scenario"`

	// Currency labels every monetary amount
	Currency types.Currency `json:"currency"`

	// Input is the scenario the result was computed from
	Input Input `json:"input"`

	// Result is the engine output
	Result *types.CalculationResult `json:"result"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// RunID uniquely identifies this run
	RunID string `json:"run_id"`

	// Timestamp is when the calculation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the calculation took
	Duration string `json:"duration"`

	// InputHash is a fingerprint of the input
	InputHash string `json:"input_hash"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewReport assembles a report. started is when computation began.
func NewReport(scenario string, currency types.Currency, in Input, result *types.CalculationResult, started time.Time, version string) (*Report, error) {
	hash, err := determinism.Fingerprint(in)
	if err != nil {
		return nil, errors.Internal("cannot fingerprint input", err)
	}

	return &Report{
		Scenario: scenario,
		Currency: currency,
		Input:    in,
		Result:   result,
		Metadata: Metadata{
			RunID:     uuid.NewString(),
			Timestamp: started.UTC().Format(time.RFC3339),
			Duration:  time.Since(started).Round(time.Microsecond).String(),
			InputHash: hash.Hex(),
			Version:   version,
		},
	}, nil
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with the cli, json and markdown formatters
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter())
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Formats returns the registered format names in sorted order
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	if f, ok := r.formatters[Format(name)]; ok {
		return f, nil
	}

	suggestion := ""
	if ranks := fuzzy.RankFindFold(name, r.Formats()); len(ranks) > 0 {
		sort.Sort(ranks)
		suggestion = ranks[0].Target
	}
	return nil, errors.UnknownValue("output format", name, suggestion).
		WithContext("supported", r.Formats())
}
