package ask

import "github.com/zclconf/go-cty/cty"

// Predicate decides whether one parsed value is acceptable. For a
// multi-slot question the predicate runs once per slot; a sequence slot
// hands it the whole list value, never the individual elements. Callers
// that want per-element checks iterate inside their own predicate.
type Predicate func(cty.Value) bool

// Always accepts every value. It is the default when a Question carries
// no Condition.
func Always(cty.Value) bool {
	return true
}

// Positive accepts number values greater than zero. It is a ready-made
// predicate for Question.Condition.
func Positive(v cty.Value) bool {
	if v.Type() != cty.Number {
		return false
	}
	return v.AsBigFloat().Sign() > 0
}

// NonEmpty accepts string values with at least one character. Form
// questions marked required compile down to it.
func NonEmpty(v cty.Value) bool {
	return v.Type() == cty.String && v.AsString() != ""
}

// check applies the predicate to every slot value. One failing slot
// rejects the whole attempt; there are no partial acceptances.
func check(vals []cty.Value, p Predicate) bool {
	for _, v := range vals {
		if !p(v) {
			return false
		}
	}
	return true
}
