// Package geometry derives areas from building dimensions.
package geometry

import (
	"math"

	"retrofit-calc/core/types"
)

// Areas holds the derived surfaces in m²
type Areas struct {
	// Building is the gross floor area over all storeys
	Building float64

	// Roof is the roof surface, slope-corrected for gable and hip roofs
	Roof float64

	// Window is the glazed facade area
	Window float64
}

// Calculate derives floor, roof and window areas
func Calculate(b types.BuildingParameters) Areas {
	return Areas{
		Building: FloorArea(b),
		Roof:     RoofArea(b),
		Window:   WindowArea(b),
	}
}

// FloorArea returns length × width × floors
func FloorArea(b types.BuildingParameters) float64 {
	return b.Length * b.Width * float64(b.Floors)
}

// RoofArea returns the footprint, projected onto the slope for sloped roofs
func RoofArea(b types.BuildingParameters) float64 {
	footprint := b.Length * b.Width
	if !b.RoofType.IsSloped() {
		return footprint
	}
	return footprint / math.Cos(b.RoofSlopeDegrees*math.Pi/180)
}

// WallArea returns the gross facade area of all four walls
func WallArea(b types.BuildingParameters) float64 {
	return 2 * (b.Length + b.Width) * b.FloorHeight * float64(b.Floors)
}

// WindowArea returns the facade area times the window-to-wall ratio
func WindowArea(b types.BuildingParameters) float64 {
	return WallArea(b) * (b.WindowToWallRatio / 100)
}
