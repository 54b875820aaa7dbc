package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoWriterDisablesColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	w := NewAutoWriter(&buf)
	assert.Equal(t, "plain", w.Color(Red, "plain"))
}

func TestColorEnabled(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, false)
	assert.Equal(t, Red+"x"+Reset, w.Color(Red, "x"))
}

// TestTableAlignsUnicodeCells checks widths count runes, not bytes
func TestTableAlignsUnicodeCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Quantity", "Value").AlignRight(1)
	table.AddRow("Roof area", "800 m²")
	table.AddRow("Window area", "1.260 m²")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Quantity    │    Value", lines[0])
	assert.Equal(t, "Roof area   │   800 m²", lines[2])
	assert.Equal(t, "Window area │ 1.260 m²", lines[3])
	assert.Equal(t, 2, table.Len())
}

func TestTableIgnoresPercentInCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Intervention", "Effective")
	table.AddRow("vrf", "31%")
	table.Render()

	assert.Contains(t, buf.String(), "31%")
	assert.NotContains(t, buf.String(), "%!")
}

func TestSummaryBox(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	box := w.NewSummaryBox("Savings")
	box.Add("Energy", "317 MWh/yr")
	box.Add("Payback", "4,2 years")
	box.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
	assert.Contains(t, lines[3], "Energy")
	assert.Contains(t, lines[4], "4,2 years")
}
