// Package types - Intervention selection
package types

import "fmt"

// CoolingUpgrade is the single-choice cooling replacement. The zero value
// is CoolingUpgradeNone.
type CoolingUpgrade int

const (
	CoolingUpgradeNone CoolingUpgrade = iota
	CoolingUpgradeAirCooledChiller
	CoolingUpgradeWaterCooledChiller
	CoolingUpgradeVRF
	CoolingUpgradePackageUnits
	CoolingUpgradeSplitUnits
)

var coolingUpgradeNames = [...]string{
	"none",
	"airCooledChiller",
	"waterCooledChiller",
	"vrf",
	"packageUnits",
	"splitUnits",
}

// String returns the canonical name
func (c CoolingUpgrade) String() string {
	if c < 0 || int(c) >= len(coolingUpgradeNames) {
		return "unknown"
	}
	return coolingUpgradeNames[c]
}

// Selected reports whether a cooling upgrade was chosen
func (c CoolingUpgrade) Selected() bool {
	return c != CoolingUpgradeNone
}

// MarshalText implements encoding.TextMarshaler
func (c CoolingUpgrade) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CoolingUpgrade) UnmarshalText(text []byte) error {
	v, err := ParseCoolingUpgrade(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCoolingUpgrade parses a cooling upgrade name
func ParseCoolingUpgrade(s string) (CoolingUpgrade, error) {
	switch normalizeName(s) {
	case "", "none":
		return CoolingUpgradeNone, nil
	case "aircooledchiller", "airchiller":
		return CoolingUpgradeAirCooledChiller, nil
	case "watercooledchiller", "waterchiller":
		return CoolingUpgradeWaterCooledChiller, nil
	case "vrf", "vrfsystem":
		return CoolingUpgradeVRF, nil
	case "packageunits", "package":
		return CoolingUpgradePackageUnits, nil
	case "splitunits":
		return CoolingUpgradeSplitUnits, nil
	}
	return CoolingUpgradeNone, fmt.Errorf("unknown cooling upgrade %q", s)
}

// CoolingUpgradeNames lists the canonical names, "none" first
func CoolingUpgradeNames() []string {
	return coolingUpgradeNames[:]
}

// LightingControl is the single-choice lighting control scheme. The zero
// value is LightingControlNone.
type LightingControl int

const (
	LightingControlNone LightingControl = iota
	LightingControlSeparateCircuits
	LightingControlCentralized
)

var lightingControlNames = [...]string{"none", "separateCircuits", "centralized"}

// String returns the canonical name
func (l LightingControl) String() string {
	if l < 0 || int(l) >= len(lightingControlNames) {
		return "unknown"
	}
	return lightingControlNames[l]
}

// Selected reports whether a lighting control option was chosen
func (l LightingControl) Selected() bool {
	return l != LightingControlNone
}

// MarshalText implements encoding.TextMarshaler
func (l LightingControl) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *LightingControl) UnmarshalText(text []byte) error {
	v, err := ParseLightingControl(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLightingControl parses a lighting control name
func ParseLightingControl(s string) (LightingControl, error) {
	switch normalizeName(s) {
	case "", "none":
		return LightingControlNone, nil
	case "separatecircuits", "separate":
		return LightingControlSeparateCircuits, nil
	case "centralized", "centralised":
		return LightingControlCentralized, nil
	}
	return LightingControlNone, fmt.Errorf("unknown lighting control %q", s)
}

// LightingControlNames lists the canonical names, "none" first
func LightingControlNames() []string {
	return lightingControlNames[:]
}

// PumpUpgrade is the single-choice water pump intervention. The zero value
// is PumpUpgradeNone.
type PumpUpgrade int

const (
	PumpUpgradeNone PumpUpgrade = iota
	PumpUpgradeNewPump
	PumpUpgradeRetrofitExisting
)

var pumpUpgradeNames = [...]string{"none", "newPump", "retrofitExistingPump"}

// String returns the canonical name
func (p PumpUpgrade) String() string {
	if p < 0 || int(p) >= len(pumpUpgradeNames) {
		return "unknown"
	}
	return pumpUpgradeNames[p]
}

// Selected reports whether a pump upgrade was chosen
func (p PumpUpgrade) Selected() bool {
	return p != PumpUpgradeNone
}

// MarshalText implements encoding.TextMarshaler
func (p PumpUpgrade) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PumpUpgrade) UnmarshalText(text []byte) error {
	v, err := ParsePumpUpgrade(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePumpUpgrade parses a pump upgrade name
func ParsePumpUpgrade(s string) (PumpUpgrade, error) {
	switch normalizeName(s) {
	case "", "none":
		return PumpUpgradeNone, nil
	case "newpump", "new":
		return PumpUpgradeNewPump, nil
	case "retrofitexistingpump", "retrofitexisting", "existing":
		return PumpUpgradeRetrofitExisting, nil
	}
	return PumpUpgradeNone, fmt.Errorf("unknown pump upgrade %q", s)
}

// PumpUpgradeNames lists the canonical names, "none" first
func PumpUpgradeNames() []string {
	return pumpUpgradeNames[:]
}

// InterventionSelection is the set of retrofit actions chosen by the user
type InterventionSelection struct {
	// Envelope
	SolarGlass     bool `json:"solar_glass"`
	ReflectiveRoof bool `json:"reflective_roof"`

	// Cooling
	CoolingUpgrade CoolingUpgrade `json:"cooling_upgrade"`

	// Ventilation
	ExhaustFanSensors bool `json:"exhaust_fan_sensors"`

	// Lighting
	LEDLights       bool            `json:"led_lights"`
	LightingControl LightingControl `json:"lighting_control"`

	// Water
	PumpUpgrade        PumpUpgrade `json:"pump_upgrade"`
	WaterHeaterUpgrade bool        `json:"water_heater_upgrade"`

	// Management
	BuildingManagementSystem bool `json:"building_management_system"`
	EnergyMonitoringSystem   bool `json:"energy_monitoring_system"`
}

// IsEmpty reports whether nothing is selected
func (s InterventionSelection) IsEmpty() bool {
	return s == InterventionSelection{}
}

// Intervention identifies one of the ten intervention families
type Intervention int

const (
	InterventionSolarGlass Intervention = iota
	InterventionReflectiveRoof
	InterventionCoolingUpgrade
	InterventionExhaustFanSensors
	InterventionLEDLights
	InterventionLightingControl
	InterventionPumpUpgrade
	InterventionWaterHeater
	InterventionBMS
	InterventionEMS

	// InterventionCount is the number of intervention families
	InterventionCount
)

var interventionNames = [...]string{
	"solarGlass",
	"reflectiveRoof",
	"coolingUpgrade",
	"exhaustFanSensors",
	"ledLights",
	"lightingControl",
	"pumpUpgrade",
	"waterHeater",
	"bms",
	"ems",
}

// String returns the canonical intervention name
func (i Intervention) String() string {
	if i < 0 || i >= InterventionCount {
		return "unknown"
	}
	return interventionNames[i]
}

// MarshalText implements encoding.TextMarshaler
func (i Intervention) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Interventions returns all intervention families in display order
func Interventions() []Intervention {
	all := make([]Intervention, InterventionCount)
	for i := range all {
		all[i] = Intervention(i)
	}
	return all
}

// IsSelected reports whether the family is active in the selection
func (s InterventionSelection) IsSelected(i Intervention) bool {
	switch i {
	case InterventionSolarGlass:
		return s.SolarGlass
	case InterventionReflectiveRoof:
		return s.ReflectiveRoof
	case InterventionCoolingUpgrade:
		return s.CoolingUpgrade.Selected()
	case InterventionExhaustFanSensors:
		return s.ExhaustFanSensors
	case InterventionLEDLights:
		return s.LEDLights
	case InterventionLightingControl:
		return s.LightingControl.Selected()
	case InterventionPumpUpgrade:
		return s.PumpUpgrade.Selected()
	case InterventionWaterHeater:
		return s.WaterHeaterUpgrade
	case InterventionBMS:
		return s.BuildingManagementSystem
	case InterventionEMS:
		return s.EnergyMonitoringSystem
	}
	return false
}
