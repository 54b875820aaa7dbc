package savings

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"retrofit-calc/core/interaction"
	"retrofit-calc/core/types"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func tariffs(price int64, factor float64) types.TariffParameters {
	return types.TariffParameters{ElectricityTariff: decimal.NewFromInt(price), EmissionFactor: factor}
}

func TestAggregateNoInterventions(t *testing.T) {
	r := interaction.Resolve(interaction.Input{})
	impact := Aggregate(r, 1000, tariffs(2, 0.5))

	if impact.TotalPercent != 0 || impact.Energy != 0 || impact.CO2 != 0 {
		t.Errorf("expected zero impact, got %+v", impact)
	}
	if !impact.Cost.IsZero() {
		t.Errorf("expected zero cost savings, got %s", impact.Cost)
	}
}

// TestAggregateConversions checks MWh, tonnes and currency conversions
func TestAggregateConversions(t *testing.T) {
	// BMS alone: 19%
	r := interaction.Resolve(interaction.Input{
		Selection: types.InterventionSelection{BuildingManagementSystem: true},
	})
	impact := Aggregate(r, 1000, tariffs(2, 0.5))

	if !approxEqual(impact.TotalPercent, 19) {
		t.Errorf("expected 19%%, got %v", impact.TotalPercent)
	}
	if !approxEqual(impact.Energy, 190) {
		t.Errorf("expected 190 MWh, got %v", impact.Energy)
	}
	if !approxEqual(impact.CO2, 95) {
		t.Errorf("expected 95 t CO2e, got %v", impact.CO2)
	}
	// 190 MWh = 190,000 kWh at 2 per kWh
	if !impact.Cost.Equal(decimal.NewFromInt(380_000)) {
		t.Errorf("expected cost savings 380000, got %s", impact.Cost)
	}
}

// TestTotalPercentSumsAllFamilies checks every effective percentage is added
func TestTotalPercentSumsAllFamilies(t *testing.T) {
	r := interaction.Resolve(interaction.Input{
		Selection: types.InterventionSelection{
			CoolingUpgrade:         types.CoolingUpgradeVRF,
			ExhaustFanSensors:      true,
			LEDLights:              true,
			PumpUpgrade:            types.PumpUpgradeRetrofitExisting,
			WaterHeaterUpgrade:     true,
			LightingControl:        types.LightingControlCentralized,
			EnergyMonitoringSystem: true,
		},
	})
	// 33 + 1 + 1 + 3 + 4 + 0.4 + 4
	if got := TotalPercent(r); !approxEqual(got, 46.4) {
		t.Errorf("expected 46.4%%, got %v", got)
	}
}

func TestPayback(t *testing.T) {
	tests := []struct {
		name       string
		investment decimal.Decimal
		savings    decimal.Decimal
		expected   float64
	}{
		{"four years", decimal.NewFromInt(400), decimal.NewFromInt(100), 4},
		{"fractional", decimal.NewFromInt(150), decimal.NewFromInt(100), 1.5},
		{"zero savings", decimal.NewFromInt(400), decimal.Zero, 0},
		{"negative savings", decimal.NewFromInt(400), decimal.NewFromInt(-10), 0},
		{"zero investment", decimal.Zero, decimal.NewFromInt(100), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Payback(tt.investment, tt.savings)
			if !approxEqual(got, tt.expected) {
				t.Errorf("expected %v years, got %v", tt.expected, got)
			}
		})
	}
}
