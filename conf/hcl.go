package conf

import (
	"sort"

	"github.com/cagecoin-project/getarg/errs"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

func parseHCL(data []byte, name string) ([]string, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errs.ErrConfigParse.WithArgs(name).Wrap(diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errs.ErrConfigParse.WithArgs(name).Wrap(diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	tokens := make([]string, 0, len(ordered))
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errs.ErrConfigParse.WithArgs(name).Wrap(diags)
		}

		s, ok := ctyString(val)
		if !ok {
			return nil, errs.ErrConfigValue.WithArgs(name, attr.Name)
		}
		tokens = append(tokens, token(attr.Name, s))
	}

	return tokens, nil
}

func ctyString(val cty.Value) (string, bool) {
	if !val.IsKnown() {
		return "", false
	}
	if val.IsNull() {
		return "", true
	}

	switch val.Type() {
	case cty.String:
		return val.AsString(), true
	case cty.Number:
		return val.AsBigFloat().Text('f', -1), true
	case cty.Bool:
		return boolValue(val.True()), true
	default:
		return "", false
	}
}
