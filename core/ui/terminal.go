// Package ui - Terminal user interface
// Headers, tables and summary boxes for the CLI report, coloured when the
// destination is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// NewAutoWriter enables colour only when out is a terminal and NO_COLOR is unset
func NewAutoWriter(out io.Writer) *Writer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}
	return NewWriter(out, !color)
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Printf writes formatted text
func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// Line writes text followed by a newline
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.out, text)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Line("")
	w.Line(w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Line("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Line(w.Color(Bold, "▸ "+title))
}

// Warning prints a warning
func (w *Writer) Warning(text string) {
	w.Line(w.Color(Yellow, "⚠ ") + text)
}

// Info prints an info message
func (w *Writer) Info(text string) {
	w.Line(w.Color(Blue, "ℹ ") + text)
}

// Dim prints de-emphasised text
func (w *Writer) Dim(text string) {
	w.Line(w.Color(Dim, text))
}

// Align is the horizontal alignment of a table column
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	align   []Align
	rows    [][]string
	widths  []int
}

// NewTable creates a table with left-aligned columns
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		align:   make([]Align, len(headers)),
		widths:  widths,
	}
}

// AlignRight right-aligns the given columns
func (t *Table) AlignRight(columns ...int) *Table {
	for _, c := range columns {
		if c >= 0 && c < len(t.align) {
			t.align[c] = AlignRight
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) pad(i int, cell string) string {
	gap := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
	if t.align[i] == AlignRight {
		return gap + cell
	}
	return cell + gap
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = t.pad(i, c)
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// Render prints the table
func (t *Table) Render() {
	t.w.Line(t.w.Color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Line(strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Line(t.line(row))
	}
}

// SummaryBox renders labelled headline figures inside a frame
type SummaryBox struct {
	w     *Writer
	title string
	rows  [][2]string
}

// NewSummaryBox creates a summary box
func (w *Writer) NewSummaryBox(title string) *SummaryBox {
	return &SummaryBox{w: w, title: title}
}

// Add appends a label and value
func (s *SummaryBox) Add(label, value string) {
	s.rows = append(s.rows, [2]string{label, value})
}

// Render prints the box
func (s *SummaryBox) Render() {
	labelWidth, valueWidth := 0, utf8.RuneCountInString(s.title)
	for _, r := range s.rows {
		labelWidth = max(labelWidth, utf8.RuneCountInString(r[0]))
		valueWidth = max(valueWidth, utf8.RuneCountInString(r[1]))
	}
	inner := labelWidth + valueWidth + 6

	border := strings.Repeat("─", inner)
	s.w.Line(s.w.Color(Bold, "╭"+border+"╮"))
	title := "  " + s.title + strings.Repeat(" ", inner-2-utf8.RuneCountInString(s.title))
	s.w.Line(s.w.Color(Bold, "│") + s.w.Color(Bold+Green, title) + s.w.Color(Bold, "│"))
	s.w.Line(s.w.Color(Bold, "├"+border+"┤"))
	for _, r := range s.rows {
		label := r[0] + strings.Repeat(" ", labelWidth-utf8.RuneCountInString(r[0]))
		value := strings.Repeat(" ", valueWidth-utf8.RuneCountInString(r[1])) + r[1]
		s.w.Line(s.w.Color(Bold, "│") + "  " + label + "  " + value + "  " + s.w.Color(Bold, "│"))
	}
	s.w.Line(s.w.Color(Bold, "╰"+border+"╯"))
}
