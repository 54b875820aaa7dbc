// Package baseline estimates pre-retrofit energy use from the utility bill.
package baseline

import (
	"github.com/shopspring/decimal"

	"retrofit-calc/core/types"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	kWhPerMWh     = decimal.NewFromInt(1000)
)

// AnnualEnergy converts a monthly bill into MWh/yr at the given tariff.
// A non-positive tariff yields 0.
func AnnualEnergy(monthlyBill, tariff decimal.Decimal) float64 {
	if !tariff.IsPositive() {
		return 0
	}
	return monthlyBill.Div(tariff).Mul(monthsPerYear).Div(kWhPerMWh).InexactFloat64()
}

// Estimate applies AnnualEnergy to a building and tariff pair
func Estimate(b types.BuildingParameters, t types.TariffParameters) float64 {
	return AnnualEnergy(b.MonthlyUtilityBill, t.ElectricityTariff)
}
