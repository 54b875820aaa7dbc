package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"retrofit-calc/internal/errors"
)

// parseHCL reads a scenario written as HCL blocks:
//
//	name = "office tower"
//	building {
//	  length    = 40
//	  roof_type = "gable"
//	}
//	interventions {
//	  cooling_upgrade = "vrf"
//	}
func parseHCL(src []byte, filename string) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid HCL scenario", diagError(diags)).
			WithContext("file", filename)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.Internal("unexpected HCL body type", fmt.Errorf("%T", file.Body))
	}
	return bodyToMap(body)
}

// diagError keeps the first error diagnostic with its position
func diagError(diags hcl.Diagnostics) error {
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		if d.Subject != nil {
			return fmt.Errorf("%s:%d: %s: %s", d.Subject.Filename, d.Subject.Start.Line, d.Summary, d.Detail)
		}
		return fmt.Errorf("%s: %s", d.Summary, d.Detail)
	}
	return diags
}

func bodyToMap(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Parsing(fmt.Sprintf("cannot evaluate %q", name), diagError(diags)).
				WithContext("line", attr.SrcRange.Start.Line)
		}
		v, err := ctyToGo(val)
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("cannot use %q", name), err).
				WithContext("line", attr.SrcRange.Start.Line)
		}
		out[name] = v
	}

	for _, block := range body.Blocks {
		if len(block.Labels) > 0 {
			return nil, errors.Newf(errors.TypeParsing, "block %q takes no labels", block.Type).
				WithContext("line", block.DefRange().Start.Line)
		}
		if _, dup := out[block.Type]; dup {
			return nil, errors.Newf(errors.TypeParsing, "%q defined more than once", block.Type).
				WithContext("line", block.DefRange().Start.Line)
		}
		m, err := bodyToMap(block.Body)
		if err != nil {
			return nil, err
		}
		out[block.Type] = m
	}

	return out, nil
}

// ctyToGo converts a fully known cty value into plain Go values.
// Unknown values cannot appear in a scenario since no variables are
// in scope, so they are rejected.
func ctyToGo(val cty.Value) (any, error) {
	if !val.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	if val.IsNull() {
		return nil, nil
	}

	t := val.Type()
	switch {
	case t == cty.String:
		return val.AsString(), nil

	case t == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil

	case t == cty.Bool:
		return val.True(), nil

	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		list := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			item, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		return list, nil

	case t.IsMapType() || t.IsObjectType():
		m := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			item, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			m[k.AsString()] = item
		}
		return m, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
}
