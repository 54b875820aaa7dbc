package investment

import (
	"testing"

	"github.com/shopspring/decimal"

	"retrofit-calc/core/geometry"
	"retrofit-calc/core/types"
)

// TestEstimateDefaults checks the reference building's seeded costs
func TestEstimateDefaults(t *testing.T) {
	areas := geometry.Calculate(types.DefaultBuilding())
	d := EstimateDefaults(areas, DefaultUnitCosts())

	// 1260 m² window * 0.5 * 650,000
	if !d.SolarGlass.Equal(decimal.NewFromInt(409_500_000)) {
		t.Errorf("expected solar glass 409500000, got %s", d.SolarGlass)
	}
	// 800 m² roof / 20 * 1,700,000
	if !d.ReflectiveRoof.Equal(decimal.NewFromInt(68_000_000)) {
		t.Errorf("expected reflective roof 68000000, got %s", d.ReflectiveRoof)
	}
}

// TestEstimateDefaultsZeroBatchArea checks a zero batch area prices the roof at zero
func TestEstimateDefaultsZeroBatchArea(t *testing.T) {
	uc := DefaultUnitCosts()
	uc.ReflectiveRoofBatchArea = 0

	d := EstimateDefaults(geometry.Areas{Roof: 800}, uc)
	if !d.ReflectiveRoof.IsZero() {
		t.Errorf("expected zero reflective roof cost, got %s", d.ReflectiveRoof)
	}
}

// TestApplyDefaultsOverwritesEdits proves the default policy discards user edits
func TestApplyDefaultsOverwritesEdits(t *testing.T) {
	catalog := types.DefaultInvestmentCatalog()
	catalog.Override(types.OptionSolarGlass, decimal.NewFromInt(1))

	d := Defaults{SolarGlass: decimal.NewFromInt(100), ReflectiveRoof: decimal.NewFromInt(200)}
	applied := ApplyDefaults(catalog, d, false)

	if !applied.Catalog.Cost(types.OptionSolarGlass).Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected solar glass overwritten to 100, got %s", applied.Catalog.Cost(types.OptionSolarGlass))
	}
	if applied.Catalog.IsOverridden(types.OptionSolarGlass) {
		t.Error("overwritten entry should no longer be flagged as overridden")
	}
	if len(applied.Overwritten) != 1 || applied.Overwritten[0] != types.OptionSolarGlass {
		t.Errorf("expected solar glass reported as overwritten, got %v", applied.Overwritten)
	}

	// Input catalog must be untouched
	if !catalog.Cost(types.OptionSolarGlass).Equal(decimal.NewFromInt(1)) {
		t.Error("ApplyDefaults mutated its input catalog")
	}
}

// TestApplyDefaultsSticky proves the sticky policy keeps user edits
func TestApplyDefaultsSticky(t *testing.T) {
	catalog := types.DefaultInvestmentCatalog()
	catalog.Override(types.OptionReflectiveRoof, decimal.NewFromInt(7))

	d := Defaults{SolarGlass: decimal.NewFromInt(100), ReflectiveRoof: decimal.NewFromInt(200)}
	applied := ApplyDefaults(catalog, d, true)

	if !applied.Catalog.Cost(types.OptionReflectiveRoof).Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected reflective roof kept at 7, got %s", applied.Catalog.Cost(types.OptionReflectiveRoof))
	}
	if !applied.Catalog.Cost(types.OptionSolarGlass).Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected solar glass seeded to 100, got %s", applied.Catalog.Cost(types.OptionSolarGlass))
	}
	if len(applied.Kept) != 1 || applied.Kept[0] != types.OptionReflectiveRoof {
		t.Errorf("expected reflective roof reported as kept, got %v", applied.Kept)
	}
}

func TestTotalizeEmptySelection(t *testing.T) {
	total := Totalize(types.InterventionSelection{}, types.DefaultInvestmentCatalog())

	if !total.Amount.IsZero() {
		t.Errorf("expected zero investment, got %s", total.Amount)
	}
	if len(total.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(total.Lines))
	}
}

// TestTotalizeBMSSupersedes proves BMS suppresses the narrower controls' costs
func TestTotalizeBMSSupersedes(t *testing.T) {
	catalog := types.DefaultInvestmentCatalog()
	sel := types.InterventionSelection{
		ExhaustFanSensors:        true,
		LEDLights:                true,
		LightingControl:          types.LightingControlCentralized,
		PumpUpgrade:              types.PumpUpgradeRetrofitExisting,
		WaterHeaterUpgrade:       true,
		BuildingManagementSystem: true,
		EnergyMonitoringSystem:   true,
	}

	total := Totalize(sel, catalog)

	expected := catalog.Cost(types.OptionLEDLights).Add(catalog.Cost(types.OptionBMS))
	if !total.Amount.Equal(expected) {
		t.Errorf("expected %s (LED + BMS), got %s", expected, total.Amount)
	}
	if len(total.Lines) != 2 {
		t.Errorf("expected 2 charged lines, got %d", len(total.Lines))
	}
}

// TestTotalizeChosenBranchOnly checks single-choice families charge one entry
func TestTotalizeChosenBranchOnly(t *testing.T) {
	catalog := types.DefaultInvestmentCatalog()

	tests := []struct {
		name     string
		sel      types.InterventionSelection
		expected types.InvestmentOption
	}{
		{"air chiller", types.InterventionSelection{CoolingUpgrade: types.CoolingUpgradeAirCooledChiller}, types.OptionCoolingAirChiller},
		{"water chiller", types.InterventionSelection{CoolingUpgrade: types.CoolingUpgradeWaterCooledChiller}, types.OptionCoolingWaterChiller},
		{"vrf", types.InterventionSelection{CoolingUpgrade: types.CoolingUpgradeVRF}, types.OptionCoolingVRF},
		{"package units", types.InterventionSelection{CoolingUpgrade: types.CoolingUpgradePackageUnits}, types.OptionCoolingPackage},
		{"split units", types.InterventionSelection{CoolingUpgrade: types.CoolingUpgradeSplitUnits}, types.OptionCoolingSplitUnits},
		{"separate circuits", types.InterventionSelection{LightingControl: types.LightingControlSeparateCircuits}, types.OptionLightingSeparate},
		{"centralized lighting", types.InterventionSelection{LightingControl: types.LightingControlCentralized}, types.OptionLightingCentralized},
		{"new pump", types.InterventionSelection{PumpUpgrade: types.PumpUpgradeNewPump}, types.OptionPumpNew},
		{"retrofit pump", types.InterventionSelection{PumpUpgrade: types.PumpUpgradeRetrofitExisting}, types.OptionPumpExisting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := Totalize(tt.sel, catalog)
			if len(total.Lines) != 1 || total.Lines[0].Option != tt.expected {
				t.Fatalf("expected single line %s, got %v", tt.expected, total.Lines)
			}
			if !total.Amount.Equal(catalog.Cost(tt.expected)) {
				t.Errorf("expected %s, got %s", catalog.Cost(tt.expected), total.Amount)
			}
		})
	}
}

// TestTotalizeEnvelopeUnconditional checks envelope costs ignore other selections
func TestTotalizeEnvelopeUnconditional(t *testing.T) {
	catalog := types.DefaultInvestmentCatalog()
	sel := types.InterventionSelection{
		SolarGlass:               true,
		ReflectiveRoof:           true,
		CoolingUpgrade:           types.CoolingUpgradeVRF,
		BuildingManagementSystem: true,
	}

	total := Totalize(sel, catalog)

	expected := catalog.Cost(types.OptionSolarGlass).
		Add(catalog.Cost(types.OptionReflectiveRoof)).
		Add(catalog.Cost(types.OptionCoolingVRF)).
		Add(catalog.Cost(types.OptionBMS))
	if !total.Amount.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, total.Amount)
	}
}
