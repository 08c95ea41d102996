package app

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// renderValue formats a filled value for the answer summary.
func renderValue(v cty.Value) string {
	switch {
	case v.Type().IsListType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			parts = append(parts, renderValue(ev))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case v.Type() == cty.String:
		return fmt.Sprintf("%q", v.AsString())
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case v.Type() == cty.Bool:
		return fmt.Sprintf("%t", v.True())
	default:
		return v.GoString()
	}
}
