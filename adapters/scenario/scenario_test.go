package scenario

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
)

func newLoader() *Loader {
	return NewLoader(nil, types.DefaultTariffs())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1587.92", "1587.92"},
		{"1.587,92", "1587.92"},
		{"1,587.92", "1587.92"},
		{"1587,92", "1587.92"},
		{"150,000,000", "150000000"},
		{"150.000.000", "150000000"},
		{" 150 000 000 ", "150000000"},
		{"-12.5", "-12.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}

	for _, bad := range []string{"", "abc", "12a", "1.2.3,4,5"} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, bad)
	}
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "vrf", Suggest("vfr", types.CoolingUpgradeNames()))
	assert.Equal(t, "markdown", Suggest("markdwn", []string{"cli", "json", "markdown"}))
	assert.Equal(t, "length", Suggest("lenght", []string{"length", "width", "floors"}))
	assert.Equal(t, "", Suggest("xml", []string{"cli", "json", "markdown"}))
	assert.Equal(t, "", Suggest("", []string{"cli"}))
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/office.HCL")
	require.NoError(t, err)
	assert.Equal(t, FormatHCL, f)

	_, err = FormatFromPath("office.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func assertOffice(t *testing.T, s *Scenario) {
	t.Helper()

	assert.Equal(t, "office tower", s.Name)
	assert.Equal(t, 50.0, s.Building.Length)
	assert.Equal(t, 20.0, s.Building.Width, "omitted fields keep the default")
	assert.Equal(t, 10, s.Building.Floors)
	assert.Equal(t, types.RoofGable, s.Building.RoofType)
	assert.True(t, s.Building.MonthlyUtilityBill.Equal(decimal.NewFromInt(150_000_000)))
	assert.True(t, s.Tariffs.ElectricityTariff.Equal(decimal.RequireFromString("1587.92")))
	assert.Equal(t, 0.87, s.Tariffs.EmissionFactor)

	assert.True(t, s.Selection.SolarGlass)
	assert.Equal(t, types.CoolingUpgradeVRF, s.Selection.CoolingUpgrade)
	assert.False(t, s.Selection.LEDLights)

	assert.True(t, s.Investments.Cost(types.OptionEMS).Equal(decimal.NewFromInt(150_000_000)))
	assert.True(t, s.Investments.IsOverridden(types.OptionEMS))
	assert.False(t, s.Investments.IsOverridden(types.OptionBMS))
	assert.Len(t, s.Investments, int(types.InvestmentOptionCount))
	assert.Empty(t, s.Warnings)
}

func TestLoadFormats(t *testing.T) {
	for _, name := range []string{"office.hcl", "office.json", "office.toml"} {
		t.Run(name, func(t *testing.T) {
			s, err := newLoader().Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assertOffice(t, s)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := newLoader().Load(filepath.Join("testdata", "missing.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestLoadSuggestsEnumName(t *testing.T) {
	_, err := newLoader().Load(filepath.Join("testdata", "typo.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), `did you mean "vrf"?`)
}

func TestParseDefaultsName(t *testing.T) {
	s, err := newLoader().Parse([]byte(`{"interventions": {"led_lights": true}}`), FormatJSON, "lobby")
	require.NoError(t, err)
	assert.Equal(t, "lobby", s.Name)
	assert.True(t, s.Selection.LEDLights)
	assert.Equal(t, types.DefaultBuilding(), s.Building)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		errType errors.Type
		hint    string
	}{
		{"bad json", FormatJSON, `{"building":`, errors.TypeParsing, ""},
		{"bad toml", FormatTOML, "[building\nlength = 1", errors.TypeParsing, ""},
		{"bad hcl", FormatHCL, "building {", errors.TypeParsing, ""},
		{"labeled block", FormatHCL, "building \"a\" {\n}\n", errors.TypeParsing, ""},
		{"unknown section", FormatJSON, `{"intervention": {}}`, errors.TypeInput, `did you mean "interventions"?`},
		{"unknown field", FormatJSON, `{"building": {"lenght": 3}}`, errors.TypeInput, `did you mean "length"?`},
		{"unknown option", FormatJSON, `{"investments": {"emss": 1}}`, errors.TypeInput, `did you mean "ems"?`},
		{"negative cost", FormatJSON, `{"investments": {"bms": -1}}`, errors.TypeInput, ""},
		{"section not a block", FormatJSON, `{"building": 3}`, errors.TypeInput, ""},
		{"enum not a name", FormatJSON, `{"building": {"roof_type": 2}}`, errors.TypeInput, ""},
		{"unsupported format", Format("yaml"), `a: 1`, errors.TypeNotSupported, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader().Parse([]byte(tt.data), tt.format, "x")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
			if tt.hint != "" {
				assert.Contains(t, err.Error(), tt.hint)
			}
		})
	}
}

func TestNonNumericValueBecomesZero(t *testing.T) {
	s, err := newLoader().Parse([]byte(`{"building": {"floors": "ten", "length": "45"}}`), FormatJSON, "x")
	require.NoError(t, err)

	assert.Equal(t, 0, s.Building.Floors)
	assert.Equal(t, 45.0, s.Building.Length)
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "building.floors")
}

func TestApplyEdit(t *testing.T) {
	l := newLoader()
	s := l.Default()

	require.NoError(t, l.ApplyEdit(s, "building.roof_type=hip"))
	require.NoError(t, l.ApplyEdit(s, "building.floors = 12"))
	require.NoError(t, l.ApplyEdit(s, "tariffs.electricityTariff=1.444,70"))
	require.NoError(t, l.ApplyEdit(s, "interventions.led_lights=true"))
	require.NoError(t, l.ApplyEdit(s, "interventions.lighting_control=centralised"))
	require.NoError(t, l.ApplyEdit(s, "investments.bms=1.000.000.000"))
	require.NoError(t, l.ApplyEdit(s, "name=annex"))

	assert.Equal(t, types.RoofHip, s.Building.RoofType)
	assert.Equal(t, 12, s.Building.Floors)
	assert.True(t, s.Tariffs.ElectricityTariff.Equal(decimal.RequireFromString("1444.70")))
	assert.True(t, s.Selection.LEDLights)
	assert.Equal(t, types.LightingControlCentralized, s.Selection.LightingControl)
	assert.True(t, s.Investments.Cost(types.OptionBMS).Equal(decimal.NewFromInt(1_000_000_000)))
	assert.True(t, s.Investments.IsOverridden(types.OptionBMS))
	assert.Equal(t, "annex", s.Name)
}

func TestApplyEditErrors(t *testing.T) {
	l := newLoader()
	s := l.Default()

	assert.Error(t, l.ApplyEdit(s, "building.length"))
	assert.Error(t, l.ApplyEdit(s, "building=3"))

	err := l.ApplyEdit(s, "interventions.cooling_upgrade=splt_units")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "splitUnits"?`)

	assert.Equal(t, types.DefaultBuilding(), s.Building, "failed edits leave the scenario alone")
}
