package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, types.CurrencyIDR, cfg.Currency)
	assert.True(t, cfg.Defaults.ElectricityTariff.Equal(decimal.RequireFromString("1587.92")))
	assert.Equal(t, 0.87, cfg.Defaults.EmissionFactor)
	assert.False(t, cfg.Investments.StickyOverrides)
	assert.Equal(t, "cli", cfg.Output.Format)
	assert.Equal(t, "id", cfg.Output.Locale)
}

func TestLoadJSONOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"currency": "USD",
		"defaults": {"electricity_tariff": "0.12", "emission_factor": 0.4},
		"investments": {"sticky_overrides": true},
		"output": {"locale": "en"}
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.CurrencyUSD, cfg.Currency)
	assert.True(t, cfg.Tariffs().ElectricityTariff.Equal(decimal.RequireFromString("0.12")))
	assert.Equal(t, 0.4, cfg.Tariffs().EmissionFactor)
	assert.True(t, cfg.EngineConfig().StickyOverrides)
	assert.Equal(t, "en", cfg.Output.Locale)
	// untouched sections keep their defaults
	assert.Equal(t, "cli", cfg.Output.Format)
	assert.True(t, cfg.UnitCosts.SolarGlassPerM2.Equal(decimal.NewFromInt(650_000)))
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
currency = "EUR"

[unit_costs]
solar_glass_per_m2 = 40
reflective_roof_batch_area = 25

[output]
format = "markdown"
show_breakdown = true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.CurrencyEUR, cfg.Currency)
	assert.True(t, cfg.UnitCosts.SolarGlassPerM2.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 25.0, cfg.UnitCosts.ReflectiveRoofBatchArea)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowBreakdown)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"currency": `), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"nested/config.json", "nested/config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := Default()
			cfg.Output.Locale = "en"
			cfg.Investments.StickyOverrides = true
			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "en", loaded.Output.Locale)
			assert.True(t, loaded.Investments.StickyOverrides)
			assert.True(t, loaded.Defaults.ElectricityTariff.Equal(cfg.Defaults.ElectricityTariff))
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	original := Get()
	defer Set(original)

	cfg := Default()
	cfg.Currency = types.CurrencyUSD
	Set(cfg)
	assert.Equal(t, types.CurrencyUSD, Get().Currency)
}
