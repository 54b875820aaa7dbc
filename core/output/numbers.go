package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Locale selects digit grouping and decimal marks
type Locale string

const (
	// LocaleID groups with "." and uses "," for decimals
	LocaleID Locale = "id"

	// LocaleEN groups with "," and uses "." for decimals
	LocaleEN Locale = "en"
)

// NumberFormat renders numbers for one locale
type NumberFormat struct {
	Locale Locale
}

// NewNumberFormat returns a formatter for the locale name; anything other
// than "en" uses the Indonesian convention.
func NewNumberFormat(locale string) NumberFormat {
	if strings.EqualFold(locale, string(LocaleEN)) {
		return NumberFormat{Locale: LocaleEN}
	}
	return NumberFormat{Locale: LocaleID}
}

// pattern builds a humanize format string for the given precision
func (n NumberFormat) pattern(decimals int) string {
	thousands, point := ".", ","
	if n.Locale == LocaleEN {
		thousands, point = ",", "."
	}
	return "#" + thousands + "###" + point + strings.Repeat("#", decimals)
}

// Float formats v with a fixed number of decimals
func (n NumberFormat) Float(v float64, decimals int) string {
	return humanize.FormatFloat(n.pattern(decimals), v)
}

// Money formats a monetary amount without decimals
func (n NumberFormat) Money(d decimal.Decimal) string {
	return n.Float(d.Round(0).InexactFloat64(), 0)
}

// Percent formats a percentage with one decimal and a % sign
func (n NumberFormat) Percent(v float64) string {
	return n.Float(v, 1) + "%"
}

// Energy formats MWh with two decimals
func (n NumberFormat) Energy(v float64) string {
	return n.Float(v, 2)
}
