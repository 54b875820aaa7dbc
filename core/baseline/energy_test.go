package baseline

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"retrofit-calc/core/types"
)

func TestAnnualEnergy(t *testing.T) {
	tests := []struct {
		name     string
		bill     decimal.Decimal
		tariff   decimal.Decimal
		expected float64
	}{
		{
			name:     "1000 per month at 1 per kWh is 12 MWh",
			bill:     decimal.NewFromInt(1000),
			tariff:   decimal.NewFromInt(1),
			expected: 12,
		},
		{
			name:     "zero tariff yields zero",
			bill:     decimal.NewFromInt(1000),
			tariff:   decimal.Zero,
			expected: 0,
		},
		{
			name:     "negative tariff yields zero",
			bill:     decimal.NewFromInt(1000),
			tariff:   decimal.NewFromInt(-5),
			expected: 0,
		},
		{
			name:     "zero bill yields zero",
			bill:     decimal.Zero,
			tariff:   decimal.NewFromInt(2),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualEnergy(tt.bill, tt.tariff)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %f MWh, got %f", tt.expected, got)
			}
		})
	}
}

// TestDefaultScenarioBaseline checks the reference bill and tariff
func TestDefaultScenarioBaseline(t *testing.T) {
	got := Estimate(types.DefaultBuilding(), types.DefaultTariffs())

	// 150,000,000 / 1587.92 * 12 / 1000
	expected := 150_000_000 / 1587.92 * 12 / 1000
	if math.Abs(got-expected) > 1e-6 {
		t.Errorf("expected %f MWh, got %f", expected, got)
	}
}
