package guards

import "testing"

// TestPipelineOutOfOrderPanics proves stages cannot be skipped
func TestPipelineOutOfOrderPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when skipping the baseline stage")
		}
	}()

	e := NewPipelineEnforcer()
	e.Mark(StageGeometry)
	e.Mark(StageDefaults)
}

// TestPipelineFullRun proves a complete ordered run passes
func TestPipelineFullRun(t *testing.T) {
	e := NewPipelineEnforcer()
	for s := StageGeometry; s <= StageAttribute; s++ {
		e.Mark(s)
	}
	e.AssertComplete()

	if e.Last() != StageAttribute {
		t.Errorf("expected last stage attribute, got %s", e.Last())
	}
}

// TestPipelineIncompletePanics proves AssertComplete catches early exits
func TestPipelineIncompletePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for incomplete pipeline")
		}
	}()

	e := NewPipelineEnforcer()
	e.Mark(StageGeometry)
	e.AssertComplete()
}

func TestAssertSumsTo(t *testing.T) {
	AssertSumsTo("halves", []float64{0.5, 0.5}, 1, 1e-9)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when values do not sum to target")
		}
	}()
	AssertSumsTo("short", []float64{0.5, 0.4}, 1, 1e-9)
}
