package engine

import (
	"github.com/shopspring/decimal"

	"retrofit-calc/core/geometry"
	"retrofit-calc/core/types"
)

// Session holds one editable scenario and keeps its result current.
// Every setter recomputes the whole pipeline and replaces the result.
// A Session is not safe for concurrent use.
type Session struct {
	engine *Engine

	building  types.BuildingParameters
	tariffs   types.TariffParameters
	selection types.InterventionSelection
	catalog   types.InvestmentCatalog

	result *types.CalculationResult
}

// NewSession starts a session from the default scenario
func NewSession(e *Engine) *Session {
	return NewSessionFrom(e, types.DefaultBuilding(), types.DefaultTariffs(),
		types.InterventionSelection{}, types.DefaultInvestmentCatalog())
}

// NewSessionFrom starts a session from the given inputs
func NewSessionFrom(
	e *Engine,
	building types.BuildingParameters,
	tariffs types.TariffParameters,
	sel types.InterventionSelection,
	catalog types.InvestmentCatalog,
) *Session {
	if e == nil {
		e = defaultEngine
	}
	s := &Session{
		engine:    e,
		building:  building,
		tariffs:   tariffs,
		selection: sel,
		catalog:   catalog.Clone(),
	}
	s.recompute(true)
	return s
}

// Result returns the current result
func (s *Session) Result() *types.CalculationResult {
	return s.result
}

// Building returns the current building parameters
func (s *Session) Building() types.BuildingParameters {
	return s.building
}

// Tariffs returns the current tariffs
func (s *Session) Tariffs() types.TariffParameters {
	return s.tariffs
}

// Selection returns the current intervention selection
func (s *Session) Selection() types.InterventionSelection {
	return s.selection
}

// Catalog returns a copy of the effective investment catalog
func (s *Session) Catalog() types.InvestmentCatalog {
	return s.catalog.Clone()
}

// SetBuilding replaces the building parameters. Geometry-derived investment
// defaults are refreshed only when the areas actually change.
func (s *Session) SetBuilding(b types.BuildingParameters) *types.CalculationResult {
	changed := geometry.Calculate(b) != geometry.Calculate(s.building)
	s.building = b
	s.recompute(changed)
	return s.result
}

// SetTariffs replaces the tariff parameters
func (s *Session) SetTariffs(t types.TariffParameters) *types.CalculationResult {
	s.tariffs = t
	s.recompute(false)
	return s.result
}

// SetSelection replaces the intervention selection
func (s *Session) SetSelection(sel types.InterventionSelection) *types.CalculationResult {
	s.selection = sel
	s.recompute(false)
	return s.result
}

// SetInvestment overrides the cost of one catalog entry
func (s *Session) SetInvestment(o types.InvestmentOption, cost decimal.Decimal) *types.CalculationResult {
	s.catalog.Override(o, cost)
	s.recompute(false)
	return s.result
}

// recompute runs the pipeline. Custom default entries survive unless the
// geometry changed and the engine is not configured for sticky overrides.
func (s *Session) recompute(geometryChanged bool) {
	sticky := s.engine.config.StickyOverrides || !geometryChanged
	s.result = s.engine.run(s.building, s.tariffs, s.selection, s.catalog, sticky)
	s.catalog = s.result.Investments.Clone()
}
