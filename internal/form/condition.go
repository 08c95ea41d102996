package form

import (
	"fmt"
	"math/big"

	"github.com/fw/askline/ask"
	"github.com/zclconf/go-cty/cty"
)

// compileCondition turns a question's validation attributes into a single
// ask.Predicate, or nil when the question has none. The prompt loop hands
// a sequence question's predicate the whole list value, so the compiled
// predicates unwrap lists and check element by element here.
func compileCondition(qb *questionBlock, ty cty.Type) (ask.Predicate, error) {
	base := ty
	if ty.IsListType() {
		base = ty.ElementType()
	}

	var preds []ask.Predicate

	if qb.Min != nil || qb.Max != nil {
		if base != cty.Number {
			return nil, fmt.Errorf("min/max require a number question, got %s", base.FriendlyName())
		}
		preds = append(preds, eachElement(rangePredicate(qb.Min, qb.Max)))
	}

	if len(qb.Choices) > 0 {
		if base != cty.String {
			return nil, fmt.Errorf("choices require a string question, got %s", base.FriendlyName())
		}
		preds = append(preds, eachElement(choicePredicate(qb.Choices)))
	}

	if qb.Required {
		if base != cty.String {
			return nil, fmt.Errorf("required is only valid on string questions, got %s", base.FriendlyName())
		}
		preds = append(preds, eachElement(ask.NonEmpty))
	}

	switch len(preds) {
	case 0:
		return nil, nil
	case 1:
		return preds[0], nil
	default:
		return func(v cty.Value) bool {
			for _, p := range preds {
				if !p(v) {
					return false
				}
			}
			return true
		}, nil
	}
}

// eachElement lifts a scalar predicate over list values so a sequence
// question validates all of its elements.
func eachElement(p ask.Predicate) ask.Predicate {
	return func(v cty.Value) bool {
		if !v.Type().IsListType() {
			return p(v)
		}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if !p(ev) {
				return false
			}
		}
		return true
	}
}

func rangePredicate(min, max *float64) ask.Predicate {
	return func(v cty.Value) bool {
		f := v.AsBigFloat()
		if min != nil && f.Cmp(big.NewFloat(*min)) < 0 {
			return false
		}
		if max != nil && f.Cmp(big.NewFloat(*max)) > 0 {
			return false
		}
		return true
	}
}

func choicePredicate(choices []string) ask.Predicate {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[c] = struct{}{}
	}
	return func(v cty.Value) bool {
		_, ok := allowed[v.AsString()]
		return ok
	}
}
