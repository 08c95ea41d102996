// This file interprets HCL type expressions (`string`, `number`, `bool`,
// `list(number)`) as cty types for question declarations.

package form

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToCtyType converts a question's type expression into its cty
// equivalent. Questions read a flat line of tokens, so the only collection
// type is list; maps, sets, and objects have no line syntax here.
func typeExprToCtyType(expr hcl.Expression) (cty.Type, error) {
	if expr == nil {
		return cty.NilType, fmt.Errorf("question has no type")
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if v.Name != "list" {
			return cty.NilType, fmt.Errorf("unsupported collection type %q: questions only support list", v.Name)
		}
		if len(v.Args) != 1 {
			return cty.NilType, fmt.Errorf("list takes exactly one argument, got %d", len(v.Args))
		}
		elemType, err := typeExprToCtyType(v.Args[0])
		if err != nil {
			return cty.NilType, err
		}
		if elemType.IsListType() {
			return cty.NilType, fmt.Errorf("nested lists cannot be read from a single line")
		}
		return cty.List(elemType), nil

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.NilType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		switch name := v.Traversal.RootName(); name {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		default:
			return cty.NilType, fmt.Errorf("unknown primitive type %q", name)
		}

	default:
		return cty.NilType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
