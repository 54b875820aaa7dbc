// Package types - End-use device categories
package types

import (
	"fmt"

	"retrofit-calc/core/guards"
)

// DeviceCategory is an end-use bucket for attributing savings
type DeviceCategory int

const (
	CategoryCooling DeviceCategory = iota
	CategoryLighting
	CategoryVentilation
	CategoryOfficeEquipment
	CategoryPumps
	CategoryHotWater
	CategoryOther

	// CategoryCount is the number of device categories
	CategoryCount
)

var categoryNames = [CategoryCount]string{
	"cooling",
	"lighting",
	"ventilation",
	"officeEquipment",
	"pumps",
	"hotWater",
	"other",
}

// categoryWeights is the baseline share of annual consumption per category
var categoryWeights = [CategoryCount]float64{
	0.69, // cooling
	0.04, // lighting
	0.05, // ventilation
	0.07, // office equipment
	0.10, // pumps
	0.03, // hot water
	0.02, // other
}

func init() {
	guards.AssertSumsTo("device category weights", categoryWeights[:], 1.0, 1e-9)
}

// String returns the canonical category name
func (c DeviceCategory) String() string {
	if c < 0 || c >= CategoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// Weight returns the fixed baseline energy share of the category
func (c DeviceCategory) Weight() float64 {
	if c < 0 || c >= CategoryCount {
		return 0
	}
	return categoryWeights[c]
}

// MarshalText implements encoding.TextMarshaler
func (c DeviceCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *DeviceCategory) UnmarshalText(text []byte) error {
	key := normalizeName(string(text))
	for i, name := range categoryNames {
		if normalizeName(name) == key {
			*c = DeviceCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown device category %q", string(text))
}

// Categories returns all categories in report order
func Categories() []DeviceCategory {
	all := make([]DeviceCategory, CategoryCount)
	for i := range all {
		all[i] = DeviceCategory(i)
	}
	return all
}

// CategoryWeights returns a copy of the weight table
func CategoryWeights() map[DeviceCategory]float64 {
	out := make(map[DeviceCategory]float64, CategoryCount)
	for _, c := range Categories() {
		out[c] = c.Weight()
	}
	return out
}
