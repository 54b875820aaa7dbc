// Package types - Calculation result
package types

import "github.com/shopspring/decimal"

// CategorySavings maps each device category to saved energy in MWh/yr
type CategorySavings map[DeviceCategory]float64

// Total returns the sum across categories
func (s CategorySavings) Total() float64 {
	total := 0.0
	for _, c := range Categories() {
		total += s[c]
	}
	return total
}

// InterventionEffect explains the effective savings of one intervention
type InterventionEffect struct {
	// Intervention is the family this entry describes
	Intervention Intervention `json:"intervention"`

	// Selected is true when the family is part of the selection
	Selected bool `json:"selected"`

	// BasePercent is the stand-alone savings of the chosen option
	BasePercent float64 `json:"base_percent"`

	// EffectivePercent is the savings after interaction rules
	EffectivePercent float64 `json:"effective_percent"`

	// Reason names the rule that produced EffectivePercent
	Reason string `json:"reason,omitempty"`
}

// InvestmentLine is one charged entry of the total investment
type InvestmentLine struct {
	Option InvestmentOption `json:"option"`
	Cost   decimal.Decimal  `json:"cost"`
}

// CategoryBreakdown is the baseline-versus-projected view of one category
type CategoryBreakdown struct {
	Category     DeviceCategory `json:"category"`
	Weight       float64        `json:"weight"`
	Baseline     float64        `json:"baseline"`
	Savings      float64        `json:"savings"`
	Projected    float64        `json:"projected"`
	HasReduction bool           `json:"has_reduction"`
}

// Assumption documents a degenerate input handled by a defined fallback
type Assumption struct {
	// Category groups related assumptions (tariff, savings, investment)
	Category string `json:"category"`

	// Description explains the assumption
	Description string `json:"description"`
}

// CalculationResult is the full output of one engine run.
// It is never mutated after Compute returns.
type CalculationResult struct {
	// Geometry (m²)
	BuildingArea float64 `json:"building_area"`
	RoofArea     float64 `json:"roof_area"`
	WindowArea   float64 `json:"window_area"`

	// AnnualEnergy is the baseline consumption in MWh/yr
	AnnualEnergy float64 `json:"annual_energy"`

	// TotalSavingsPercent is the unclamped sum of effective percentages
	TotalSavingsPercent float64 `json:"total_savings_percent"`

	// EnergySavings in MWh/yr
	EnergySavings float64 `json:"energy_savings"`

	// CO2Reduction in t CO2e/yr
	CO2Reduction float64 `json:"co2_reduction"`

	// CostSavings per year
	CostSavings decimal.Decimal `json:"cost_savings"`

	// TotalInvestment is the capital cost of the selected interventions
	TotalInvestment decimal.Decimal `json:"total_investment"`

	// InvestmentLines lists the catalog entries charged in TotalInvestment
	InvestmentLines []InvestmentLine `json:"investment_lines"`

	// PaybackPeriod in years, 0 when there are no cost savings
	PaybackPeriod float64 `json:"payback_period"`

	// SavingsByCategory attributes EnergySavings to end uses
	SavingsByCategory CategorySavings `json:"savings_by_category"`

	// Interventions lists the resolved effect of every family
	Interventions []InterventionEffect `json:"interventions"`

	// Breakdown holds the baseline-versus-projected chart data
	Breakdown []CategoryBreakdown `json:"breakdown"`

	// Investments is the catalog after geometry-driven defaults were applied
	Investments InvestmentCatalog `json:"investments"`

	// Assumptions records fallbacks taken during the run
	Assumptions []Assumption `json:"assumptions,omitempty"`
}

// Effect returns the resolved entry for one intervention
func (r *CalculationResult) Effect(i Intervention) (InterventionEffect, bool) {
	for _, e := range r.Interventions {
		if e.Intervention == i {
			return e, true
		}
	}
	return InterventionEffect{}, false
}
