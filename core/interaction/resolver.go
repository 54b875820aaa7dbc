// Package interaction resolves the effective savings of each intervention
// given everything else selected alongside it.
//
// Building management and cooling upgrades are dominant controls: they
// subsume the effect of narrower measures. Envelope measures combined with a
// cooling upgrade are discounted so shading gains are not counted twice.
package interaction

import (
	"fmt"

	"retrofit-calc/core/types"
)

// Input is the snapshot every rule reads
type Input struct {
	Selection       types.InterventionSelection
	DominantCooling types.CoolingSystem
}

// outcome is what a rule returns for a selected intervention
type outcome struct {
	base      float64
	effective float64
	reason    string
}

// Rule resolves one intervention family. Resolve is only called when the
// family is selected; unselected families contribute zero.
type Rule struct {
	Intervention types.Intervention
	resolve      func(in Input) outcome
}

// Rules is the decision table, one rule per family. Rules never read each
// other's output, so evaluation order is irrelevant.
var Rules = []Rule{
	{types.InterventionSolarGlass, resolveSolarGlass},
	{types.InterventionReflectiveRoof, resolveReflectiveRoof},
	{types.InterventionCoolingUpgrade, resolveCoolingUpgrade},
	{types.InterventionExhaustFanSensors, resolveExhaustFan},
	{types.InterventionLEDLights, resolveLED},
	{types.InterventionLightingControl, resolveLightingControl},
	{types.InterventionPumpUpgrade, resolvePump},
	{types.InterventionWaterHeater, resolveWaterHeater},
	{types.InterventionBMS, resolveBMS},
	{types.InterventionEMS, resolveEMS},
}

// Resolution holds the effective percentage of every family
type Resolution struct {
	effects [types.InterventionCount]types.InterventionEffect
}

// Resolve evaluates the decision table against one selection snapshot
func Resolve(in Input) Resolution {
	var r Resolution
	for _, rule := range Rules {
		effect := types.InterventionEffect{
			Intervention: rule.Intervention,
			Selected:     in.Selection.IsSelected(rule.Intervention),
		}
		if effect.Selected {
			o := rule.resolve(in)
			effect.BasePercent = o.base
			effect.EffectivePercent = o.effective
			effect.Reason = o.reason
		}
		r.effects[rule.Intervention] = effect
	}
	return r
}

// Percent returns the effective percentage of one family
func (r Resolution) Percent(i types.Intervention) float64 {
	if i < 0 || i >= types.InterventionCount {
		return 0
	}
	return r.effects[i].EffectivePercent
}

// Effect returns the resolved entry of one family
func (r Resolution) Effect(i types.Intervention) types.InterventionEffect {
	return r.effects[i]
}

// Effects returns all resolved entries in intervention order
func (r Resolution) Effects() []types.InterventionEffect {
	out := make([]types.InterventionEffect, len(r.effects))
	copy(out, r.effects[:])
	return out
}

// Percents returns the effective percentages in intervention order
func (r Resolution) Percents() []float64 {
	out := make([]float64, len(r.effects))
	for i, e := range r.effects {
		out[i] = e.EffectivePercent
	}
	return out
}

func resolveSolarGlass(in Input) outcome {
	switch {
	case in.Selection.CoolingUpgrade.Selected():
		return outcome{SolarGlassBase, SolarGlassDiscounted, "discounted: cooling upgrade selected"}
	case in.DominantCooling == types.CoolingSplitUnit:
		return outcome{SolarGlassBase, SolarGlassDiscounted, "discounted: split-unit building"}
	}
	return outcome{SolarGlassBase, SolarGlassBase, "base"}
}

func resolveReflectiveRoof(in Input) outcome {
	switch {
	case in.Selection.SolarGlass:
		return outcome{ReflectiveRoofBase, ReflectiveRoofWithSolarGlass, "discounted: solar glass selected"}
	case in.Selection.CoolingUpgrade.Selected():
		return outcome{ReflectiveRoofBase, ReflectiveRoofWithCooling, "discounted: cooling upgrade selected"}
	}
	return outcome{ReflectiveRoofBase, ReflectiveRoofBase, "base"}
}

// resolveCoolingUpgrade may go negative; the reductions are not clamped.
func resolveCoolingUpgrade(in Input) outcome {
	base := coolingBase[in.Selection.CoolingUpgrade]
	effective := base
	reason := "base"

	var discounts []string
	if in.Selection.SolarGlass {
		effective -= CoolingEnvelopeDiscount
		discounts = append(discounts, "solar glass")
	}
	if in.Selection.ReflectiveRoof {
		effective -= CoolingEnvelopeDiscount
		discounts = append(discounts, "reflective roof")
	}
	switch len(discounts) {
	case 1:
		reason = fmt.Sprintf("reduced: %s selected", discounts[0])
	case 2:
		reason = fmt.Sprintf("reduced: %s and %s selected", discounts[0], discounts[1])
	}
	return outcome{base, effective, reason}
}

func resolveExhaustFan(in Input) outcome {
	if in.Selection.BuildingManagementSystem {
		return outcome{ExhaustFanBase, 0, "suppressed: building management system selected"}
	}
	return outcome{ExhaustFanBase, ExhaustFanBase, "base"}
}

func resolveLED(in Input) outcome {
	switch {
	case in.Selection.BuildingManagementSystem:
		return outcome{LEDBase, LEDWithControls, "discounted: building management system selected"}
	case in.Selection.LightingControl.Selected():
		return outcome{LEDBase, LEDWithControls, "discounted: lighting control selected"}
	}
	return outcome{LEDBase, LEDBase, "base"}
}

func resolveLightingControl(in Input) outcome {
	base := lightingControlBase[in.Selection.LightingControl]
	if in.Selection.BuildingManagementSystem {
		return outcome{base, 0, "suppressed: building management system selected"}
	}
	return outcome{base, base, "base"}
}

func resolvePump(in Input) outcome {
	base := pumpBase[in.Selection.PumpUpgrade]
	if in.Selection.BuildingManagementSystem {
		return outcome{base, pumpWithBMS[in.Selection.PumpUpgrade], "discounted: building management system selected"}
	}
	return outcome{base, base, "base"}
}

func resolveWaterHeater(in Input) outcome {
	if in.Selection.BuildingManagementSystem {
		return outcome{WaterHeaterBase, WaterHeaterWithBMS, "discounted: building management system selected"}
	}
	return outcome{WaterHeaterBase, WaterHeaterBase, "base"}
}

func resolveBMS(in Input) outcome {
	if in.Selection.CoolingUpgrade.Selected() {
		return outcome{BMSBase, BMSWithCooling, "discounted: cooling upgrade selected"}
	}
	return outcome{BMSBase, BMSBase, "base"}
}

func resolveEMS(in Input) outcome {
	if in.Selection.BuildingManagementSystem {
		return outcome{EMSBase, 0, "suppressed: building management system selected"}
	}
	return outcome{EMSBase, EMSBase, "base"}
}
