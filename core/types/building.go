// Package types - Building and tariff inputs
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoofType is the roof shape of the building
type RoofType int

const (
	RoofFlat RoofType = iota
	RoofGable
	RoofHip
)

var roofTypeNames = [...]string{"flat", "gable", "hip"}

// String returns the canonical roof type name
func (r RoofType) String() string {
	if r < 0 || int(r) >= len(roofTypeNames) {
		return "unknown"
	}
	return roofTypeNames[r]
}

// IsSloped reports whether the roof surface is inclined
func (r RoofType) IsSloped() bool {
	return r == RoofGable || r == RoofHip
}

// MarshalText implements encoding.TextMarshaler
func (r RoofType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *RoofType) UnmarshalText(text []byte) error {
	v, err := ParseRoofType(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRoofType parses a roof type name. The legacy Indonesian labels
// (datar, pelana, perisai) are accepted as aliases.
func ParseRoofType(s string) (RoofType, error) {
	switch normalizeName(s) {
	case "flat", "datar":
		return RoofFlat, nil
	case "gable", "pelana":
		return RoofGable, nil
	case "hip", "perisai":
		return RoofHip, nil
	}
	return RoofFlat, fmt.Errorf("unknown roof type %q", s)
}

// RoofTypeNames lists the canonical roof type names
func RoofTypeNames() []string {
	return roofTypeNames[:]
}

// CoolingSystem is the dominant cooling system already installed
type CoolingSystem int

const (
	CoolingCentralAC CoolingSystem = iota
	CoolingSplitUnit
)

var coolingSystemNames = [...]string{"centralAC", "splitUnit"}

// String returns the canonical cooling system name
func (c CoolingSystem) String() string {
	if c < 0 || int(c) >= len(coolingSystemNames) {
		return "unknown"
	}
	return coolingSystemNames[c]
}

// MarshalText implements encoding.TextMarshaler
func (c CoolingSystem) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CoolingSystem) UnmarshalText(text []byte) error {
	v, err := ParseCoolingSystem(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCoolingSystem parses a dominant cooling system name
func ParseCoolingSystem(s string) (CoolingSystem, error) {
	switch normalizeName(s) {
	case "centralac", "accentral", "central":
		return CoolingCentralAC, nil
	case "splitunit", "acsplit", "split":
		return CoolingSplitUnit, nil
	}
	return CoolingCentralAC, fmt.Errorf("unknown cooling system %q", s)
}

// CoolingSystemNames lists the canonical cooling system names
func CoolingSystemNames() []string {
	return coolingSystemNames[:]
}

// BuildingParameters describes the building being retrofitted.
// All values are expected to be sanitized by the input layer.
type BuildingParameters struct {
	// Length of the footprint in metres
	Length float64 `json:"length"`

	// Width of the footprint in metres
	Width float64 `json:"width"`

	// Floors is the number of storeys
	Floors int `json:"floors"`

	// FloorHeight is the floor-to-floor height in metres
	FloorHeight float64 `json:"floor_height"`

	// WindowToWallRatio is the glazed share of the facade, in percent
	WindowToWallRatio float64 `json:"window_to_wall_ratio"`

	// RoofType is the roof shape
	RoofType RoofType `json:"roof_type"`

	// RoofSlopeDegrees is only used for sloped roofs
	RoofSlopeDegrees float64 `json:"roof_slope_degrees"`

	// MonthlyUtilityBill is the average electricity bill per month
	MonthlyUtilityBill decimal.Decimal `json:"monthly_utility_bill"`

	// DominantCooling is the cooling system currently in place
	DominantCooling CoolingSystem `json:"dominant_cooling"`
}

// TariffParameters holds the grid tariff and emission factor
type TariffParameters struct {
	// ElectricityTariff is the price per kWh
	ElectricityTariff decimal.Decimal `json:"electricity_tariff"`

	// EmissionFactor is the grid factor in kg CO2e per kWh
	EmissionFactor float64 `json:"emission_factor"`
}

// DefaultBuilding returns the reference office building
func DefaultBuilding() BuildingParameters {
	return BuildingParameters{
		Length:             40,
		Width:              20,
		Floors:             10,
		FloorHeight:        3.5,
		WindowToWallRatio:  30,
		RoofType:           RoofFlat,
		RoofSlopeDegrees:   30,
		MonthlyUtilityBill: decimal.NewFromInt(150_000_000),
		DominantCooling:    CoolingCentralAC,
	}
}

// DefaultTariffs returns the reference tariff (IDR/kWh) and grid emission factor
func DefaultTariffs() TariffParameters {
	return TariffParameters{
		ElectricityTariff: decimal.RequireFromString("1587.92"),
		EmissionFactor:    0.87,
	}
}

// normalizeName folds case and drops separators so "AC Split",
// "ac-split" and "acSplit" compare equal.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
