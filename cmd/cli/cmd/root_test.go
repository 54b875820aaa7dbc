package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.json")))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "retrofit-calc version "+Version+"\n", execute(t, "version"))
}

func TestWeightsCommand(t *testing.T) {
	out := execute(t, "weights")
	assert.Contains(t, out, "cooling")
	assert.Contains(t, out, "69,0%")
	assert.Contains(t, out, "officeEquipment")
}

func TestEstimateCommandJSON(t *testing.T) {
	out := execute(t, "estimate", "--format", "json", "--set", "interventions.led_lights=true")

	var decoded struct {
		Result struct {
			TotalSavingsPercent float64 `json:"total_savings_percent"`
			TotalInvestment     string  `json:"total_investment"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 4.0, decoded.Result.TotalSavingsPercent)
	assert.Equal(t, "216000000", decoded.Result.TotalInvestment)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retrofit.toml")

	out := execute(t, "config", "init", path)
	assert.Contains(t, out, "Wrote "+path)

	out = execute(t, "config", "show", "--toml")
	assert.Contains(t, out, `currency = "IDR"`)
	assert.Contains(t, out, "[output]")
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	before := filepath.Join(dir, "before.toml")
	after := filepath.Join(dir, "after.toml")
	require.NoError(t, os.WriteFile(before, []byte("[interventions]\nsolar_glass = true\n"), 0o644))
	require.NoError(t, os.WriteFile(after, []byte("[interventions]\nsolar_glass = true\ncooling_upgrade = \"vrf\"\n"), 0o644))

	out := execute(t, "compare", before, after)
	assert.Contains(t, out, "before → after")
	assert.Contains(t, out, "coolingUpgrade")
	assert.Contains(t, out, "added")
	assert.Contains(t, out, "+25,0%")
}
