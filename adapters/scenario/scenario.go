// Package scenario loads calculation inputs from HCL, JSON and TOML files
// and applies single-field edits. All loose input handling lives here:
// numbers written as text, locale digit grouping, enum aliases and
// misspelt names. The engine only ever sees typed values.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"retrofit-calc/core/types"
	"retrofit-calc/internal/errors"
)

// Format is a scenario file format
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.NotSupported("scenario file extension " + filepath.Ext(path)).
		WithContext("supported", []string{".hcl", ".json", ".toml"})
}

// Section names
const (
	SectionName          = "name"
	SectionBuilding      = "building"
	SectionTariffs       = "tariffs"
	SectionInterventions = "interventions"
	SectionInvestments   = "investments"
)

var topLevelKeys = []string{SectionName, SectionBuilding, SectionTariffs, SectionInterventions, SectionInvestments}

// Scenario is one complete set of calculation inputs
type Scenario struct {
	Name        string
	Building    types.BuildingParameters
	Tariffs     types.TariffParameters
	Selection   types.InterventionSelection
	Investments types.InvestmentCatalog

	// Warnings lists values that were replaced by a fallback
	Warnings []string
}

// Loader reads scenarios on top of a default baseline
type Loader struct {
	logger  *zap.Logger
	tariffs types.TariffParameters
}

// NewLoader creates a loader. tariffs fill in whatever a scenario omits.
func NewLoader(logger *zap.Logger, tariffs types.TariffParameters) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger:  logger.Named("scenario"),
		tariffs: tariffs,
	}
}

// Default returns the reference scenario
func (l *Loader) Default() *Scenario {
	return &Scenario{
		Name:        "default",
		Building:    types.DefaultBuilding(),
		Tariffs:     l.tariffs,
		Investments: types.DefaultInvestmentCatalog(),
	}
}

// Load reads and decodes a scenario file
func (l *Loader) Load(path string) (*Scenario, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("scenario file", path)
		}
		return nil, errors.Wrap(errors.TypeInput, "cannot read scenario", err).WithContext("path", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := l.Parse(data, format, name)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("scenario loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("warnings", len(s.Warnings)))
	return s, nil
}

// Parse decodes scenario data. name is used unless the data sets one.
func (l *Loader) Parse(data []byte, format Format, name string) (*Scenario, error) {
	var raw map[string]any

	switch format {
	case FormatHCL:
		m, err := parseHCL(data, name+".hcl")
		if err != nil {
			return nil, err
		}
		raw = m
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Parsing("invalid JSON scenario", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, errors.Parsing("invalid TOML scenario", err)
		}
	default:
		return nil, errors.NotSupported("scenario format " + string(format))
	}

	s := l.Default()
	s.Name = name
	if err := l.apply(s, raw); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *Loader) coercer(s *Scenario) *coercer {
	return &coercer{warn: func(field, value string) {
		s.Warnings = append(s.Warnings, fmt.Sprintf("%s: %q is not a number; using 0", field, value))
		l.logger.Warn("non-numeric value replaced by 0", zap.String("field", field), zap.String("value", value))
	}}
}

// apply decodes raw sections onto s in a fixed order
func (l *Loader) apply(s *Scenario, raw map[string]any) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := l.applySection(s, key, raw[key]); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) applySection(s *Scenario, key string, value any) error {
	section := ""
	for _, k := range topLevelKeys {
		if normalize(k) == normalize(key) {
			section = k
		}
	}
	if section == "" {
		return errors.UnknownValue("scenario section", key, Suggest(key, topLevelKeys))
	}

	if section == SectionName {
		s.Name = fmt.Sprint(value)
		return nil
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return errors.Newf(errors.TypeInput, "%s must be a block or object, got %T", section, value)
	}

	c := l.coercer(s)
	switch section {
	case SectionBuilding:
		return c.decodeSection(section, fields, &s.Building)
	case SectionTariffs:
		return c.decodeSection(section, fields, &s.Tariffs)
	case SectionInterventions:
		return c.decodeSection(section, fields, &s.Selection)
	default:
		return l.applyInvestments(s, c, fields)
	}
}

// applyInvestments records custom catalog costs as user overrides
func (l *Loader) applyInvestments(s *Scenario, c *coercer, fields map[string]any) error {
	for key, value := range fields {
		o, err := types.ParseInvestmentOption(key)
		if err != nil {
			names := types.InvestmentOptionNames()
			return errors.UnknownValue("investment option", key, Suggest(key, names)).
				WithContext("accepted", names)
		}
		cost := c.number(SectionInvestments+"."+o.String(), value)
		if cost.IsNegative() {
			return errors.Newf(errors.TypeInput, "investment %s cannot be negative: %s", o, cost)
		}
		s.Investments.Override(o, cost)
	}
	return nil
}

// ApplyEdit applies one "section.field=value" edit, e.g.
// "building.roof_type=gable" or "investments.ems=150.000.000".
func (l *Loader) ApplyEdit(s *Scenario, edit string) error {
	path, value, ok := strings.Cut(edit, "=")
	if !ok {
		return errors.Newf(errors.TypeInput, "edit %q must have the form section.field=value", edit)
	}
	path = strings.TrimSpace(path)
	value = strings.TrimSpace(value)

	section, field, hasField := strings.Cut(path, ".")
	if !hasField {
		return l.applySection(s, section, value)
	}
	if err := l.applySection(s, section, map[string]any{field: value}); err != nil {
		return err
	}

	l.logger.Debug("edit applied", zap.String("path", path), zap.String("value", value))
	return nil
}
