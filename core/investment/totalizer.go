package investment

import (
	"github.com/shopspring/decimal"

	"retrofit-calc/core/types"
)

// Total is the capital cost of a selection
type Total struct {
	Amount decimal.Decimal
	Lines  []types.InvestmentLine
}

// Totalize charges exactly the selected branch of each family.
//
// A building management system supersedes exhaust fan sensors, lighting
// control, pump upgrade, water heater and energy monitoring, so those are
// not charged when BMS is selected. LED relamping is always charged.
func Totalize(sel types.InterventionSelection, catalog types.InvestmentCatalog) Total {
	var options []types.InvestmentOption
	bms := sel.BuildingManagementSystem

	if sel.SolarGlass {
		options = append(options, types.OptionSolarGlass)
	}
	if sel.ReflectiveRoof {
		options = append(options, types.OptionReflectiveRoof)
	}
	if o, ok := types.CoolingOption(sel.CoolingUpgrade); ok {
		options = append(options, o)
	}
	if sel.ExhaustFanSensors && !bms {
		options = append(options, types.OptionExhaustFanSensors)
	}
	if sel.LEDLights {
		options = append(options, types.OptionLEDLights)
	}
	if o, ok := types.LightingOption(sel.LightingControl); ok && !bms {
		options = append(options, o)
	}
	if o, ok := types.PumpOption(sel.PumpUpgrade); ok && !bms {
		options = append(options, o)
	}
	if sel.WaterHeaterUpgrade && !bms {
		options = append(options, types.OptionWaterHeater)
	}
	if bms {
		options = append(options, types.OptionBMS)
	}
	if sel.EnergyMonitoringSystem && !bms {
		options = append(options, types.OptionEMS)
	}

	total := Total{Amount: decimal.Zero, Lines: make([]types.InvestmentLine, 0, len(options))}
	for _, o := range options {
		cost := catalog.Cost(o)
		total.Lines = append(total.Lines, types.InvestmentLine{Option: o, Cost: cost})
		total.Amount = total.Amount.Add(cost)
	}
	return total
}
