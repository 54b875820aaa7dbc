// Package config provides configuration management.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"retrofit-calc/core/engine"
	"retrofit-calc/core/investment"
	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
	"retrofit-calc/internal/logging"
)

// FileName is the default config file name in the home directory
const FileName = ".retrofit-calc.json"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" toml:"version"`

	// Currency labels every monetary amount in reports
	Currency types.Currency `json:"currency" toml:"currency"`

	// Defaults fill tariff fields a scenario leaves out
	Defaults DefaultsConfig `json:"defaults" toml:"defaults"`

	// UnitCosts seed the geometry-derived investment entries
	UnitCosts investment.UnitCosts `json:"unit_costs" toml:"unit_costs"`

	// Investments contains catalog policy
	Investments InvestmentsConfig `json:"investments" toml:"investments"`

	// Output contains output configuration
	Output OutputConfig `json:"output" toml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" toml:"logging"`
}

// DefaultsConfig holds the tariff used when a scenario omits one
type DefaultsConfig struct {
	// ElectricityTariff is the price of one kWh
	ElectricityTariff decimal.Decimal `json:"electricity_tariff" toml:"electricity_tariff"`

	// EmissionFactor is in kg CO2e per kWh
	EmissionFactor float64 `json:"emission_factor" toml:"emission_factor"`
}

// InvestmentsConfig controls how custom catalog costs are treated
type InvestmentsConfig struct {
	// StickyOverrides keeps custom solar glass and reflective roof costs
	// when the geometry changes
	StickyOverrides bool `json:"sticky_overrides" toml:"sticky_overrides"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default report format (cli, json, markdown)
	Format string `json:"format" toml:"format"`

	// Locale selects number formatting (id, en)
	Locale string `json:"locale" toml:"locale"`

	// ShowBreakdown adds the per-category baseline and projection table
	ShowBreakdown bool `json:"show_breakdown" toml:"show_breakdown"`

	// ShowInterventions adds the per-intervention explanation table
	ShowInterventions bool `json:"show_interventions" toml:"show_interventions"`
}

// Default returns a default configuration
func Default() *Config {
	tariffs := types.DefaultTariffs()

	return &Config{
		Version:  "1.0",
		Currency: types.CurrencyIDR,
		Defaults: DefaultsConfig{
			ElectricityTariff: tariffs.ElectricityTariff,
			EmissionFactor:    tariffs.EmissionFactor,
		},
		UnitCosts: investment.DefaultUnitCosts(),
		Investments: InvestmentsConfig{
			StickyOverrides: false,
		},
		Output: OutputConfig{
			Format:            "cli",
			Locale:            "id",
			ShowBreakdown:     false,
			ShowInterventions: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.retrofit-calc.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(homeDir, FileName)
}

// Tariffs returns the configured default tariffs
func (c *Config) Tariffs() types.TariffParameters {
	return types.TariffParameters{
		ElectricityTariff: c.Defaults.ElectricityTariff,
		EmissionFactor:    c.Defaults.EmissionFactor,
	}
}

// EngineConfig returns the engine settings derived from this config
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		UnitCosts:       c.UnitCosts,
		StickyOverrides: c.Investments.StickyOverrides,
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load loads configuration from a JSON or TOML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot read config", err).WithContext("path", path)
	}

	config := Default()
	if isTOML(path) {
		_, err = toml.Decode(string(data), config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config("invalid config", err).WithContext("path", path)
	}

	return config, nil
}

// Save saves configuration to a file, as TOML when the path ends in .toml
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("cannot create config directory", err)
	}

	data, err := c.Encode(isTOML(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("cannot write config", err).WithContext("path", path)
	}
	return nil
}

// Encode renders the configuration as indented JSON or TOML
func (c *Config) Encode(asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, errors.Internal("cannot encode config", err)
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Internal("cannot encode config", err)
	}
	return append(data, '\n'), nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
