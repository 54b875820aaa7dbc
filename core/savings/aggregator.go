// Package savings turns resolved percentages into energy, emissions and
// cost impact, and computes the simple payback period.
package savings

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"

	"retrofit-calc/core/interaction"
	"retrofit-calc/core/types"
)

var kWhPerMWh = decimal.NewFromInt(1000)

// Impact is the aggregate effect of a resolved selection
type Impact struct {
	// TotalPercent is the unclamped sum of effective percentages
	TotalPercent float64

	// Energy saved in MWh/yr
	Energy float64

	// CO2 avoided in t CO2e/yr
	CO2 float64

	// Cost saved per year
	Cost decimal.Decimal
}

// TotalPercent sums the effective percentages without clamping
func TotalPercent(r interaction.Resolution) float64 {
	return floats.Sum(r.Percents())
}

// Aggregate converts a resolution into impact on a baseline of annualEnergy MWh/yr
func Aggregate(r interaction.Resolution, annualEnergy float64, t types.TariffParameters) Impact {
	total := TotalPercent(r)
	energy := annualEnergy * total / 100

	return Impact{
		TotalPercent: total,
		Energy:       energy,
		// MWh × kg/kWh = t
		CO2:  energy * t.EmissionFactor,
		Cost: decimal.NewFromFloat(energy).Mul(kWhPerMWh).Mul(t.ElectricityTariff),
	}
}

// Payback returns investment / annual cost savings in years, or 0 when
// there are no positive savings.
func Payback(investment, costSavings decimal.Decimal) float64 {
	if !costSavings.IsPositive() {
		return 0
	}
	return investment.Div(costSavings).InexactFloat64()
}
