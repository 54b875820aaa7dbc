// Package attribution maps resolved savings onto end-use device categories.
package attribution

import (
	"gonum.org/v1/gonum/floats"

	"retrofit-calc/core/interaction"
	"retrofit-calc/core/types"
)

// DistributionTargets are the categories that share whole-building
// management savings. Office equipment and other loads are not controlled.
var DistributionTargets = []types.DeviceCategory{
	types.CategoryCooling,
	types.CategoryLighting,
	types.CategoryVentilation,
	types.CategoryPumps,
	types.CategoryHotWater,
}

// DistributionWeight is the combined baseline weight of DistributionTargets
func DistributionWeight() float64 {
	weights := make([]float64, len(DistributionTargets))
	for i, c := range DistributionTargets {
		weights[i] = c.Weight()
	}
	return floats.Sum(weights)
}

// Attribute returns saved MWh/yr per category for a baseline of annualEnergy
func Attribute(r interaction.Resolution, sel types.InterventionSelection, annualEnergy float64) types.CategorySavings {
	out := make(types.CategorySavings, types.CategoryCount)
	for _, c := range types.Categories() {
		out[c] = 0
	}

	share := func(percents ...float64) float64 {
		return floats.Sum(percents) / 100 * annualEnergy
	}

	if sel.SolarGlass || sel.ReflectiveRoof || sel.CoolingUpgrade.Selected() {
		out[types.CategoryCooling] += share(
			r.Percent(types.InterventionSolarGlass),
			r.Percent(types.InterventionReflectiveRoof),
			r.Percent(types.InterventionCoolingUpgrade),
		)
	}
	if sel.ExhaustFanSensors {
		out[types.CategoryVentilation] += share(r.Percent(types.InterventionExhaustFanSensors))
	}
	if sel.LEDLights || sel.LightingControl.Selected() {
		out[types.CategoryLighting] += share(
			r.Percent(types.InterventionLEDLights),
			r.Percent(types.InterventionLightingControl),
		)
	}
	if sel.PumpUpgrade.Selected() {
		out[types.CategoryPumps] += share(r.Percent(types.InterventionPumpUpgrade))
	}
	if sel.WaterHeaterUpgrade {
		out[types.CategoryHotWater] += share(r.Percent(types.InterventionWaterHeater))
	}

	if sel.BuildingManagementSystem || sel.EnergyMonitoringSystem {
		ratio := (r.Percent(types.InterventionBMS) + r.Percent(types.InterventionEMS)) / 100
		total := DistributionWeight()
		for _, c := range DistributionTargets {
			out[c] += ratio * (c.Weight() / total) * annualEnergy
		}
	}

	return out
}

// Breakdown builds the baseline-versus-projected view used for charting
func Breakdown(savings types.CategorySavings, annualEnergy float64) []types.CategoryBreakdown {
	out := make([]types.CategoryBreakdown, 0, types.CategoryCount)
	for _, c := range types.Categories() {
		baseline := annualEnergy * c.Weight()
		saved := savings[c]

		b := types.CategoryBreakdown{
			Category:  c,
			Weight:    c.Weight(),
			Baseline:  baseline,
			Savings:   saved,
			Projected: baseline,
		}
		if saved > 0 {
			b.Projected = baseline - saved
			b.HasReduction = true
		}
		out = append(out, b)
	}
	return out
}
