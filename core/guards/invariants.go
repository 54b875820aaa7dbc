// Package guards - Runtime assertion guards
// These assertions PANIC if violated - there is no recovery.
package guards

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stage is one step of the calculation pipeline
type Stage int

const (
	StageNone Stage = iota
	StageGeometry
	StageBaseline
	StageDefaults
	StageResolve
	StageAggregate
	StageInvest
	StagePayback
	StageAttribute
)

var stageNames = [...]string{
	"none",
	"geometry",
	"baseline",
	"defaults",
	"resolve",
	"aggregate",
	"invest",
	"payback",
	"attribute",
}

// String returns the stage name
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// PipelineEnforcer enforces that pipeline stages run in order, exactly once
type PipelineEnforcer struct {
	last Stage
}

// NewPipelineEnforcer creates an enforcer for one run
func NewPipelineEnforcer() *PipelineEnforcer {
	return &PipelineEnforcer{}
}

// Mark records that a stage is about to run
func (e *PipelineEnforcer) Mark(stage Stage) {
	if stage != e.last+1 {
		panic(fmt.Sprintf("INVARIANT VIOLATED: stage %s cannot run after %s", stage, e.last))
	}
	e.last = stage
}

// Last returns the most recently completed stage
func (e *PipelineEnforcer) Last() Stage {
	return e.last
}

// AssertComplete asserts every stage has run
func (e *PipelineEnforcer) AssertComplete() {
	if e.last != StageAttribute {
		panic(fmt.Sprintf("ASSERTION FAILED: pipeline stopped after %s", e.last))
	}
}

// AssertSumsTo asserts that values add up to target within tol
func AssertSumsTo(name string, values []float64, target, tol float64) {
	sum := floats.Sum(values)
	if math.Abs(sum-target) > tol {
		panic(fmt.Sprintf("INVARIANT VIOLATED: %s sum to %v, want %v", name, sum, target))
	}
}
