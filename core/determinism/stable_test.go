package determinism

import (
	"testing"
)

func TestFingerprintIsStableAcrossMapOrder(t *testing.T) {
	a := map[string]int{"b": 2, "a": 1, "c": 3}
	b := map[string]int{"c": 3, "a": 1, "b": 2}

	ha := MustFingerprint(a)
	hb := MustFingerprint(b)
	if ha != hb {
		t.Errorf("expected equal fingerprints, got %s and %s", ha.Hex(), hb.Hex())
	}
	if ha.IsZero() {
		t.Error("fingerprint should not be zero")
	}
}

func TestFingerprintDiffers(t *testing.T) {
	ha := MustFingerprint(map[string]int{"a": 1})
	hb := MustFingerprint(map[string]int{"a": 2})
	if ha == hb {
		t.Error("different values must hash differently")
	}
}

func TestFingerprintUnencodable(t *testing.T) {
	if _, err := Fingerprint(make(chan int)); err == nil {
		t.Error("expected error for unencodable value")
	}
}

func TestContentHashFormatting(t *testing.T) {
	h := ComputeHash([]byte("retrofit"))
	if len(h.Hex()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h.Hex()))
	}
	if len(h.Short()) != 12 {
		t.Errorf("expected 12 chars, got %d", len(h.Short()))
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]bool{"pumps": true, "cooling": true, "lighting": true})
	expected := []string{"cooling", "lighting", "pumps"}
	for i, k := range keys {
		if k != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], k)
		}
	}
}

func TestRangeMapSortedStops(t *testing.T) {
	visited := 0
	RangeMapSorted(map[int]int{1: 1, 2: 2, 3: 3}, func(k, v int) bool {
		visited++
		return k < 2
	})
	if visited != 2 {
		t.Errorf("expected iteration to stop after 2 entries, got %d", visited)
	}
}
