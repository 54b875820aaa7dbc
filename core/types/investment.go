// Package types - Investment catalog
package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyIDR Currency = "IDR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// InvestmentOption is one concrete, priced intervention option
type InvestmentOption int

const (
	OptionSolarGlass InvestmentOption = iota
	OptionReflectiveRoof
	OptionCoolingAirChiller
	OptionCoolingWaterChiller
	OptionCoolingVRF
	OptionCoolingPackage
	OptionCoolingSplitUnits
	OptionExhaustFanSensors
	OptionLEDLights
	OptionLightingSeparate
	OptionLightingCentralized
	OptionPumpNew
	OptionPumpExisting
	OptionWaterHeater
	OptionBMS
	OptionEMS

	// InvestmentOptionCount is the number of catalog entries
	InvestmentOptionCount
)

var investmentOptionNames = [...]string{
	"solarGlass",
	"reflectiveRoof",
	"coolingAirChiller",
	"coolingWaterChiller",
	"coolingVRF",
	"coolingPackage",
	"coolingSplitUnits",
	"exhaustFanSensors",
	"ledLights",
	"lightingSeparate",
	"lightingCentralized",
	"pumpNew",
	"pumpExisting",
	"waterHeater",
	"bms",
	"ems",
}

// String returns the catalog key
func (o InvestmentOption) String() string {
	if o < 0 || o >= InvestmentOptionCount {
		return "unknown"
	}
	return investmentOptionNames[o]
}

// MarshalText implements encoding.TextMarshaler
func (o InvestmentOption) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (o *InvestmentOption) UnmarshalText(text []byte) error {
	v, err := ParseInvestmentOption(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseInvestmentOption resolves a catalog key. Both camelCase and
// snake_case spellings are accepted.
func ParseInvestmentOption(s string) (InvestmentOption, error) {
	key := normalizeName(s)
	for i, name := range investmentOptionNames {
		if normalizeName(name) == key {
			return InvestmentOption(i), nil
		}
	}
	return 0, fmt.Errorf("unknown investment option %q", s)
}

// InvestmentOptionNames lists all catalog keys in catalog order
func InvestmentOptionNames() []string {
	return investmentOptionNames[:]
}

// InvestmentOptions returns all options in catalog order
func InvestmentOptions() []InvestmentOption {
	all := make([]InvestmentOption, InvestmentOptionCount)
	for i := range all {
		all[i] = InvestmentOption(i)
	}
	return all
}

// CoolingOption maps a cooling upgrade to its catalog entry
func CoolingOption(c CoolingUpgrade) (InvestmentOption, bool) {
	switch c {
	case CoolingUpgradeAirCooledChiller:
		return OptionCoolingAirChiller, true
	case CoolingUpgradeWaterCooledChiller:
		return OptionCoolingWaterChiller, true
	case CoolingUpgradeVRF:
		return OptionCoolingVRF, true
	case CoolingUpgradePackageUnits:
		return OptionCoolingPackage, true
	case CoolingUpgradeSplitUnits:
		return OptionCoolingSplitUnits, true
	}
	return 0, false
}

// LightingOption maps a lighting control scheme to its catalog entry
func LightingOption(l LightingControl) (InvestmentOption, bool) {
	switch l {
	case LightingControlSeparateCircuits:
		return OptionLightingSeparate, true
	case LightingControlCentralized:
		return OptionLightingCentralized, true
	}
	return 0, false
}

// PumpOption maps a pump upgrade to its catalog entry
func PumpOption(p PumpUpgrade) (InvestmentOption, bool) {
	switch p {
	case PumpUpgradeNewPump:
		return OptionPumpNew, true
	case PumpUpgradeRetrofitExisting:
		return OptionPumpExisting, true
	}
	return 0, false
}

// InvestmentEntry is the capital cost of one option
type InvestmentEntry struct {
	// Cost is the capital expenditure
	Cost decimal.Decimal `json:"cost"`

	// Overridden is set once the user edits the entry directly
	Overridden bool `json:"overridden,omitempty"`
}

// InvestmentCatalog maps every option to its capital cost.
// A missing entry costs zero.
type InvestmentCatalog map[InvestmentOption]InvestmentEntry

// Cost returns the capital cost of an option
func (c InvestmentCatalog) Cost(o InvestmentOption) decimal.Decimal {
	if e, ok := c[o]; ok {
		return e.Cost
	}
	return decimal.Zero
}

// IsOverridden reports whether the user edited an entry
func (c InvestmentCatalog) IsOverridden(o InvestmentOption) bool {
	return c[o].Overridden
}

// Override records a user edit
func (c InvestmentCatalog) Override(o InvestmentOption, cost decimal.Decimal) {
	c[o] = InvestmentEntry{Cost: cost, Overridden: true}
}

// Clone returns an independent copy
func (c InvestmentCatalog) Clone() InvestmentCatalog {
	out := make(InvestmentCatalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// DefaultInvestmentCatalog returns the reference capital costs in IDR
func DefaultInvestmentCatalog() InvestmentCatalog {
	costs := map[InvestmentOption]int64{
		OptionSolarGlass:          1_310_400_000,
		OptionReflectiveRoof:      136_000_000,
		OptionCoolingAirChiller:   6_500_000_000,
		OptionCoolingWaterChiller: 8_500_000_000,
		OptionCoolingVRF:          8_000_000_000,
		OptionCoolingPackage:      16_000_000_000,
		OptionCoolingSplitUnits:   18_000_000_000,
		OptionExhaustFanSensors:   60_000_000,
		OptionLEDLights:           216_000_000,
		OptionLightingSeparate:    200_000_000,
		OptionLightingCentralized: 540_000_000,
		OptionPumpNew:             648_000_000,
		OptionPumpExisting:        1_300_000_000,
		OptionWaterHeater:         364_000_000,
		OptionBMS:                 855_000_000,
		OptionEMS:                 165_000_000,
	}

	catalog := make(InvestmentCatalog, len(costs))
	for option, cost := range costs {
		catalog[option] = InvestmentEntry{Cost: decimal.NewFromInt(cost)}
	}
	return catalog
}
