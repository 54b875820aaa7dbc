// Package investment derives default capital costs and totals the
// investment of a selection.
package investment

import (
	"github.com/shopspring/decimal"

	"retrofit-calc/core/geometry"
	"retrofit-calc/core/types"
)

// UnitCosts holds the rates used to seed area-scaled catalog entries
type UnitCosts struct {
	// SolarGlassPerM2 is the price of one m² of solar control film
	SolarGlassPerM2 decimal.Decimal `json:"solar_glass_per_m2" toml:"solar_glass_per_m2"`

	// SolarGlassCoverage is the share of the window area treated
	SolarGlassCoverage float64 `json:"solar_glass_coverage" toml:"solar_glass_coverage"`

	// ReflectiveRoofPerBatch is the price of one batch of reflective paint
	ReflectiveRoofPerBatch decimal.Decimal `json:"reflective_roof_per_batch" toml:"reflective_roof_per_batch"`

	// ReflectiveRoofBatchArea is the roof area one batch covers, in m²
	ReflectiveRoofBatchArea float64 `json:"reflective_roof_batch_area" toml:"reflective_roof_batch_area"`
}

// DefaultUnitCosts returns the reference rates in IDR
func DefaultUnitCosts() UnitCosts {
	return UnitCosts{
		SolarGlassPerM2:         decimal.NewFromInt(650_000),
		SolarGlassCoverage:      0.5,
		ReflectiveRoofPerBatch:  decimal.NewFromInt(1_700_000),
		ReflectiveRoofBatchArea: 20,
	}
}

// Defaults are the geometry-derived suggestions for the two area-scaled options
type Defaults struct {
	SolarGlass     decimal.Decimal
	ReflectiveRoof decimal.Decimal
}

// EstimateDefaults prices solar glass and reflective roof from the building areas
func EstimateDefaults(areas geometry.Areas, uc UnitCosts) Defaults {
	d := Defaults{
		SolarGlass:     decimal.NewFromFloat(areas.Window * uc.SolarGlassCoverage).Mul(uc.SolarGlassPerM2),
		ReflectiveRoof: decimal.Zero,
	}
	if uc.ReflectiveRoofBatchArea > 0 {
		batches := decimal.NewFromFloat(areas.Roof / uc.ReflectiveRoofBatchArea)
		d.ReflectiveRoof = batches.Mul(uc.ReflectiveRoofPerBatch)
	}
	return d
}

// Applied is the outcome of seeding a catalog with defaults
type Applied struct {
	// Catalog is a fresh copy with the defaults written in
	Catalog types.InvestmentCatalog

	// Overwritten lists user-edited entries replaced by a default
	Overwritten []types.InvestmentOption

	// Kept lists user-edited entries preserved under the sticky policy
	Kept []types.InvestmentOption
}

// ApplyDefaults writes the defaults into a copy of the catalog. With sticky
// unset every recompute replaces the two entries, discarding user edits;
// with sticky set, entries marked Overridden are left alone.
func ApplyDefaults(catalog types.InvestmentCatalog, d Defaults, sticky bool) Applied {
	out := Applied{Catalog: catalog.Clone()}

	seed := []struct {
		option types.InvestmentOption
		cost   decimal.Decimal
	}{
		{types.OptionSolarGlass, d.SolarGlass},
		{types.OptionReflectiveRoof, d.ReflectiveRoof},
	}

	for _, s := range seed {
		if out.Catalog.IsOverridden(s.option) {
			if sticky {
				out.Kept = append(out.Kept, s.option)
				continue
			}
			out.Overwritten = append(out.Overwritten, s.option)
		}
		out.Catalog[s.option] = types.InvestmentEntry{Cost: s.cost}
	}

	return out
}
