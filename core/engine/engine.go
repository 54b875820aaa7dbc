// Package engine provides the retrofit calculation engine.
// CLI and other front ends are thin wrappers around Compute and Session.
package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"retrofit-calc/core/attribution"
	"retrofit-calc/core/baseline"
	"retrofit-calc/core/geometry"
	"retrofit-calc/core/guards"
	"retrofit-calc/core/interaction"
	"retrofit-calc/core/investment"
	"retrofit-calc/core/savings"
	"retrofit-calc/core/types"
)

// Engine runs the full calculation pipeline.
// It holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	config Config
	logger *zap.Logger
}

// Config configures the engine
type Config struct {
	// UnitCosts drive the geometry-derived investment defaults
	UnitCosts investment.UnitCosts

	// StickyOverrides keeps user-edited default entries across geometry changes
	StickyOverrides bool
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		UnitCosts:       investment.DefaultUnitCosts(),
		StickyOverrides: false,
	}
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(config Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		config: config,
		logger: logger.Named("engine"),
	}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

var defaultEngine = NewEngine(DefaultConfig(), nil)

// Compute runs the pipeline with the default configuration
func Compute(
	building types.BuildingParameters,
	tariffs types.TariffParameters,
	sel types.InterventionSelection,
	catalog types.InvestmentCatalog,
) *types.CalculationResult {
	return defaultEngine.Compute(building, tariffs, sel, catalog)
}

// Compute runs geometry, baseline, defaults, resolution, aggregation,
// investment, payback and attribution in that order and returns a fresh result.
// The catalog argument is not modified; the effective catalog is returned
// in the result's Investments field.
func (e *Engine) Compute(
	building types.BuildingParameters,
	tariffs types.TariffParameters,
	sel types.InterventionSelection,
	catalog types.InvestmentCatalog,
) *types.CalculationResult {
	return e.run(building, tariffs, sel, catalog, e.config.StickyOverrides)
}

// Evaluate runs the pipeline on a complete snapshot whose catalog edits
// were made against this same building, so custom solar glass and
// reflective roof costs are kept. Compute applies the configured policy.
func (e *Engine) Evaluate(
	building types.BuildingParameters,
	tariffs types.TariffParameters,
	sel types.InterventionSelection,
	catalog types.InvestmentCatalog,
) *types.CalculationResult {
	return e.run(building, tariffs, sel, catalog, true)
}

func (e *Engine) run(
	building types.BuildingParameters,
	tariffs types.TariffParameters,
	sel types.InterventionSelection,
	catalog types.InvestmentCatalog,
	sticky bool,
) *types.CalculationResult {
	start := time.Now()
	stages := guards.NewPipelineEnforcer()
	result := &types.CalculationResult{}

	stages.Mark(guards.StageGeometry)
	areas := geometry.Calculate(building)
	result.BuildingArea = areas.Building
	result.RoofArea = areas.Roof
	result.WindowArea = areas.Window

	stages.Mark(guards.StageBaseline)
	result.AnnualEnergy = baseline.Estimate(building, tariffs)
	if !tariffs.ElectricityTariff.IsPositive() {
		result.Assumptions = append(result.Assumptions, types.Assumption{
			Category:    "tariff",
			Description: fmt.Sprintf("electricity tariff %s is not positive; baseline energy taken as 0", tariffs.ElectricityTariff),
		})
	}

	stages.Mark(guards.StageDefaults)
	applied := investment.ApplyDefaults(catalog, investment.EstimateDefaults(areas, e.config.UnitCosts), sticky)
	result.Investments = applied.Catalog
	for _, o := range applied.Overwritten {
		result.Assumptions = append(result.Assumptions, types.Assumption{
			Category:    "investment",
			Description: fmt.Sprintf("custom %s cost replaced by the geometry-based default", o),
		})
	}
	for _, o := range applied.Kept {
		result.Assumptions = append(result.Assumptions, types.Assumption{
			Category:    "investment",
			Description: fmt.Sprintf("custom %s cost kept; geometry-based default not applied", o),
		})
	}

	stages.Mark(guards.StageResolve)
	resolution := interaction.Resolve(interaction.Input{
		Selection:       sel,
		DominantCooling: building.DominantCooling,
	})
	result.Interventions = resolution.Effects()
	for _, eff := range result.Interventions {
		if eff.Selected && eff.EffectivePercent < 0 {
			result.Assumptions = append(result.Assumptions, types.Assumption{
				Category:    "savings",
				Description: fmt.Sprintf("%s resolves to %g%%; negative value kept", eff.Intervention, eff.EffectivePercent),
			})
		}
	}

	stages.Mark(guards.StageAggregate)
	impact := savings.Aggregate(resolution, result.AnnualEnergy, tariffs)
	result.TotalSavingsPercent = impact.TotalPercent
	result.EnergySavings = impact.Energy
	result.CO2Reduction = impact.CO2
	result.CostSavings = impact.Cost
	if impact.TotalPercent > 100 {
		result.Assumptions = append(result.Assumptions, types.Assumption{
			Category:    "savings",
			Description: fmt.Sprintf("total savings of %g%% exceed 100%%; value not clamped", impact.TotalPercent),
		})
	}

	stages.Mark(guards.StageInvest)
	total := investment.Totalize(sel, result.Investments)
	result.TotalInvestment = total.Amount
	result.InvestmentLines = total.Lines

	stages.Mark(guards.StagePayback)
	result.PaybackPeriod = savings.Payback(result.TotalInvestment, result.CostSavings)

	stages.Mark(guards.StageAttribute)
	result.SavingsByCategory = attribution.Attribute(resolution, sel, result.AnnualEnergy)
	result.Breakdown = attribution.Breakdown(result.SavingsByCategory, result.AnnualEnergy)

	stages.AssertComplete()

	e.logger.Debug("calculation complete",
		zap.Float64("annual_energy_mwh", result.AnnualEnergy),
		zap.Float64("savings_percent", result.TotalSavingsPercent),
		zap.String("investment", result.TotalInvestment.String()),
		zap.Float64("payback_years", result.PaybackPeriod),
		zap.Int("assumptions", len(result.Assumptions)),
		zap.Duration("duration", time.Since(start)),
	)

	return result
}
