// Package diff compares two calculation results, typically the current
// building against a variant with a different selection or geometry.
package diff

import (
	"math"

	"github.com/shopspring/decimal"

	"retrofit-calc/core/types"
)

// DiffResult is the complete diff between two calculation results
type DiffResult struct {
	// Headline metrics
	SavingsPercent MetricDiff `json:"savings_percent"`
	EnergySavings  MetricDiff `json:"energy_savings"`
	CO2Reduction   MetricDiff `json:"co2_reduction"`
	PaybackPeriod  MetricDiff `json:"payback_period"`

	CostSavings     MoneyDiff `json:"cost_savings"`
	TotalInvestment MoneyDiff `json:"total_investment"`

	// Interventions holds one entry per family, in display order
	Interventions []*InterventionDiff `json:"interventions"`

	// Investments lists catalog entries whose cost differs
	Investments []*InvestmentDiff `json:"investments,omitempty"`

	// Counts
	AddedCount     int `json:"added_count"`
	RemovedCount   int `json:"removed_count"`
	ChangedCount   int `json:"changed_count"`
	UnchangedCount int `json:"unchanged_count"`
}

// MetricDiff is a before/after pair of a float metric
type MetricDiff struct {
	Before float64 `json:"before"`
	After  float64 `json:"after"`
	Delta  float64 `json:"delta"`
}

// MoneyDiff is a before/after pair of an amount
type MoneyDiff struct {
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
	Delta  decimal.Decimal `json:"delta"`

	// DeltaPercent is relative to Before, 0 when Before is zero
	DeltaPercent float64 `json:"delta_percent"`
}

// InterventionDiff describes how one intervention family changed
type InterventionDiff struct {
	Intervention types.Intervention `json:"intervention"`
	ChangeType   ChangeType         `json:"change"`

	Before types.InterventionEffect `json:"before"`
	After  types.InterventionEffect `json:"after"`

	// Delta of the effective percentage
	Delta float64 `json:"delta"`
}

// InvestmentDiff describes a catalog entry whose cost changed
type InvestmentDiff struct {
	Option types.InvestmentOption `json:"option"`
	Before decimal.Decimal        `json:"before"`
	After  decimal.Decimal        `json:"after"`
}

// ChangeType indicates the type of change
type ChangeType int

const (
	ChangeAdded     ChangeType = iota // Selected only after
	ChangeRemoved                     // Selected only before
	ChangeModified                    // Effective percentage changed
	ChangeUnchanged                   // No change
)

// String returns the change type name
func (c ChangeType) String() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	case ChangeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Differ computes diffs between calculation results
type Differ struct {
	// Threshold in percentage points below which an effective
	// percentage counts as unchanged
	ChangeThreshold float64
}

// NewDiffer creates a new differ
func NewDiffer(changeThreshold float64) *Differ {
	if changeThreshold <= 0 {
		changeThreshold = 1e-9
	}
	return &Differ{ChangeThreshold: changeThreshold}
}

// Diff computes the diff between before and after
func (d *Differ) Diff(before, after *types.CalculationResult) *DiffResult {
	result := &DiffResult{
		SavingsPercent:  metric(before.TotalSavingsPercent, after.TotalSavingsPercent),
		EnergySavings:   metric(before.EnergySavings, after.EnergySavings),
		CO2Reduction:    metric(before.CO2Reduction, after.CO2Reduction),
		PaybackPeriod:   metric(before.PaybackPeriod, after.PaybackPeriod),
		CostSavings:     money(before.CostSavings, after.CostSavings),
		TotalInvestment: money(before.TotalInvestment, after.TotalInvestment),
		Interventions:   make([]*InterventionDiff, 0, types.InterventionCount),
	}

	for _, i := range types.Interventions() {
		b, _ := before.Effect(i)
		a, _ := after.Effect(i)

		id := &InterventionDiff{
			Intervention: i,
			Before:       b,
			After:        a,
			Delta:        a.EffectivePercent - b.EffectivePercent,
			ChangeType:   d.classify(b, a),
		}
		result.Interventions = append(result.Interventions, id)

		switch id.ChangeType {
		case ChangeAdded:
			result.AddedCount++
		case ChangeRemoved:
			result.RemovedCount++
		case ChangeModified:
			result.ChangedCount++
		default:
			result.UnchangedCount++
		}
	}

	for _, o := range types.InvestmentOptions() {
		b := before.Investments.Cost(o)
		a := after.Investments.Cost(o)
		if !b.Equal(a) {
			result.Investments = append(result.Investments, &InvestmentDiff{Option: o, Before: b, After: a})
		}
	}

	return result
}

func (d *Differ) classify(before, after types.InterventionEffect) ChangeType {
	switch {
	case !before.Selected && after.Selected:
		return ChangeAdded
	case before.Selected && !after.Selected:
		return ChangeRemoved
	case math.Abs(after.EffectivePercent-before.EffectivePercent) > d.ChangeThreshold:
		return ChangeModified
	case before.BasePercent != after.BasePercent:
		return ChangeModified
	default:
		return ChangeUnchanged
	}
}

// HasChanges returns true if anything changed
func (r *DiffResult) HasChanges() bool {
	return r.AddedCount > 0 || r.RemovedCount > 0 || r.ChangedCount > 0 ||
		len(r.Investments) > 0 || r.EnergySavings.Delta != 0 || !r.CostSavings.Delta.IsZero()
}

func metric(before, after float64) MetricDiff {
	return MetricDiff{Before: before, After: after, Delta: after - before}
}

func money(before, after decimal.Decimal) MoneyDiff {
	m := MoneyDiff{Before: before, After: after, Delta: after.Sub(before)}
	if !before.IsZero() {
		m.DeltaPercent = m.Delta.Div(before).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return m
}
