package scenario

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
)

// ParseNumber reads a number written either plainly ("1587.92") or with
// locale grouping ("1.587,92", "150.000.000", "1,587.92").
func ParseNumber(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(" ", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty number")
	}

	if d, err := decimal.NewFromString(clean); err == nil {
		return d, nil
	}

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")
	commas := strings.Count(clean, ",")
	dots := strings.Count(clean, ".")

	switch {
	case commas > 0 && dots > 0 && lastComma > lastDot:
		// 1.587,92
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	case commas > 0 && dots > 0:
		// 1,587.92
		clean = strings.ReplaceAll(clean, ",", "")
	case commas == 1:
		// 1587,92
		clean = strings.Replace(clean, ",", ".", 1)
	case commas > 1:
		// 150,000,000
		clean = strings.ReplaceAll(clean, ",", "")
	case dots > 1:
		// 150.000.000
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	return d, nil
}

// Suggest returns the candidate closest to input, or "" when none is close
func Suggest(input string, candidates []string) string {
	if input == "" || len(candidates) == 0 {
		return ""
	}

	if ranks := fuzzy.RankFindNormalizedFold(input, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", -1
	lower := strings.ToLower(input)
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(c))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c, d
		}
	}
	if bestDistance > max(2, len(input)/3) {
		return ""
	}
	return best
}

// enumParser parses one enum family by name
type enumParser struct {
	field string
	names func() []string
	parse func(string) (any, error)
}

var enumParsers = map[reflect.Type]enumParser{
	reflect.TypeOf(types.RoofType(0)): {
		field: "roof type",
		names: types.RoofTypeNames,
		parse: func(s string) (any, error) { return types.ParseRoofType(s) },
	},
	reflect.TypeOf(types.CoolingSystem(0)): {
		field: "cooling system",
		names: types.CoolingSystemNames,
		parse: func(s string) (any, error) { return types.ParseCoolingSystem(s) },
	},
	reflect.TypeOf(types.CoolingUpgrade(0)): {
		field: "cooling upgrade",
		names: types.CoolingUpgradeNames,
		parse: func(s string) (any, error) { return types.ParseCoolingUpgrade(s) },
	},
	reflect.TypeOf(types.LightingControl(0)): {
		field: "lighting control",
		names: types.LightingControlNames,
		parse: func(s string) (any, error) { return types.ParseLightingControl(s) },
	},
	reflect.TypeOf(types.PumpUpgrade(0)): {
		field: "pump upgrade",
		names: types.PumpUpgradeNames,
		parse: func(s string) (any, error) { return types.ParsePumpUpgrade(s) },
	},
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// coercer converts loosely typed form values into field types.
// Unusable numbers become 0 and are reported through warn.
type coercer struct {
	warn func(field, value string)
}

func (c *coercer) number(field string, data any) decimal.Decimal {
	switch v := data.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		return c.number(field, v.String())
	case decimal.Decimal:
		return v
	case bool:
		if v {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case string:
		d, err := ParseNumber(v)
		if err != nil {
			c.warn(field, v)
			return decimal.Zero
		}
		return d
	}
	c.warn(field, fmt.Sprint(data))
	return decimal.Zero
}

// enumHook is a mapstructure decode hook resolving enum names
func enumHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	p, ok := enumParsers[to]
	if !ok {
		return data, nil
	}
	s, isString := data.(string)
	if !isString {
		return nil, errors.Newf(errors.TypeInput, "%s must be a name, got %v", p.field, data)
	}
	v, err := p.parse(s)
	if err != nil {
		return nil, errors.UnknownValue(p.field, s, Suggest(s, p.names())).
			WithContext("accepted", p.names())
	}
	return v, nil
}

// normalize lowercases s and drops separators so that camelCase,
// snake_case and spaced spellings compare equal
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fields maps json tag names of a struct type to their field types
type fields struct {
	names []string
	types map[string]reflect.Type
}

func fieldsOf(v any) fields {
	t := reflect.TypeOf(v)
	f := fields{types: make(map[string]reflect.Type, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		f.names = append(f.names, tag)
		f.types[tag] = t.Field(i).Type
	}
	return f
}

// lookup resolves a key written in any casing to its tag name
func (f fields) lookup(key string) (string, bool) {
	want := normalize(key)
	for _, n := range f.names {
		if normalize(n) == want {
			return n, true
		}
	}
	return "", false
}

// prepare canonicalises the keys of one section and coerces numeric
// values to the field types, leaving enums and bools for mapstructure.
func (c *coercer) prepare(section string, raw map[string]any, f fields) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		name, ok := f.lookup(key)
		if !ok {
			return nil, errors.UnknownValue(section+" field", key, Suggest(key, f.names)).
				WithContext("section", section)
		}

		field := section + "." + name
		t := f.types[name]
		switch {
		case t == decimalType:
			out[name] = c.number(field, value)
		case t.Kind() == reflect.Float64 && !isEnum(t):
			out[name] = c.number(field, value).InexactFloat64()
		case t.Kind() == reflect.Int && !isEnum(t):
			out[name] = int(c.number(field, value).IntPart())
		default:
			out[name] = value
		}
	}
	return out, nil
}

func isEnum(t reflect.Type) bool {
	_, ok := enumParsers[t]
	return ok
}

// decodeSection decodes raw onto target, a pointer to a pre-filled struct
func (c *coercer) decodeSection(section string, raw map[string]any, target any) error {
	prepared, err := c.prepare(section, raw, fieldsOf(reflect.ValueOf(target).Elem().Interface()))
	if err != nil {
		return err
	}

	// mapstructure flattens hook errors to strings; keep the typed one
	var hookErr error
	hook := func(from reflect.Type, to reflect.Type, data any) (any, error) {
		v, err := enumHook(from, to, data)
		if err != nil && hookErr == nil {
			hookErr = err
		}
		return v, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       hook,
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return errors.Internal("cannot build decoder", err)
	}
	if err := decoder.Decode(prepared); err != nil {
		if hookErr != nil {
			return hookErr
		}
		return errors.Wrapf(errors.TypeInput, err, "invalid %s section", section)
	}
	return nil
}
