package ask

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

type slotKind int

const (
	kindValue slotKind = iota
	kindFixedSeq
	kindRemainder
)

// Slot describes one typed destination to be filled from a line's tokens.
// Construct slots with Value, FixedSeq, or Remainder.
type Slot struct {
	kind slotKind
	typ  cty.Type
	n    int

	// verify, when set, narrows what counts as a well-formed token beyond
	// the cty conversion. Slots derived from Go destinations use it to
	// require that a parsed value round-trips into the destination type,
	// so "5.5" is malformed for an *int even though it is a valid number.
	verify func(cty.Value) error
}

// Value returns a slot that consumes exactly one token and converts it to
// the given type.
func Value(ty cty.Type) Slot {
	return Slot{kind: kindValue, typ: ty}
}

// FixedSeq returns a slot that consumes exactly n tokens of the given
// element type and yields them as a cty list. Fewer than n tokens on the
// line is a parse failure, not a partial fill.
func FixedSeq(ty cty.Type, n int) Slot {
	return Slot{kind: kindFixedSeq, typ: ty, n: n}
}

// Remainder returns a slot that greedily consumes tokens of the given
// element type until one fails to convert or the line runs out, yielding
// a cty list. The failing token is not an error; it simply ends the
// sequence. A Remainder slot is only legal in the final position.
func Remainder(ty cty.Type) Slot {
	return Slot{kind: kindRemainder, typ: ty}
}

// Type reports the slot's value type: the scalar type for a Value slot,
// the element type for sequence slots.
func (s Slot) Type() cty.Type {
	return s.typ
}

// SlotsFor derives a slot per destination pointer, mirroring what AskInto
// does internally. Scalar pointers become Value slots, array pointers
// become FixedSeq slots of the array's length, and slice pointers become
// Remainder slots. Each derived slot only accepts tokens whose parsed
// value fits the destination's Go type, so a fractional or overflowing
// number is malformed for an integer destination, not a decode error
// after acceptance.
func SlotsFor(dests ...any) ([]Slot, error) {
	slots := make([]Slot, 0, len(dests))
	for i, dest := range dests {
		rv := reflect.ValueOf(dest)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return nil, fmt.Errorf("ask: destination %d must be a non-nil pointer, got %T", i, dest)
		}
		elem := rv.Type().Elem()
		switch elem.Kind() {
		case reflect.Slice:
			ety, err := impliedType(elem.Elem())
			if err != nil {
				return nil, fmt.Errorf("ask: destination %d: %w", i, err)
			}
			s := Remainder(ety)
			s.verify = fitsGoType(elem.Elem())
			slots = append(slots, s)
		case reflect.Array:
			ety, err := impliedType(elem.Elem())
			if err != nil {
				return nil, fmt.Errorf("ask: destination %d: %w", i, err)
			}
			s := FixedSeq(ety, elem.Len())
			s.verify = fitsGoType(elem.Elem())
			slots = append(slots, s)
		default:
			ty, err := impliedType(elem)
			if err != nil {
				return nil, fmt.Errorf("ask: destination %d: %w", i, err)
			}
			s := Value(ty)
			s.verify = fitsGoType(elem)
			slots = append(slots, s)
		}
	}
	return slots, nil
}

// fitsGoType reports whether a parsed value survives the trip into the
// given Go type, using the same conversion decodeInto performs later.
func fitsGoType(goType reflect.Type) func(cty.Value) error {
	return func(v cty.Value) error {
		return gocty.FromCtyValue(v, reflect.New(goType).Interface())
	}
}

func impliedType(goType reflect.Type) (cty.Type, error) {
	ty, err := gocty.ImpliedType(reflect.Zero(goType).Interface())
	if err != nil {
		return cty.NilType, fmt.Errorf("no input type for Go type %s: %w", goType, err)
	}
	return ty, nil
}

// decodeInto copies one filled value per destination pointer. Array
// destinations are filled element by element because gocty only targets
// slices.
func decodeInto(vals []cty.Value, dests ...any) error {
	for i, dest := range dests {
		rv := reflect.ValueOf(dest).Elem()
		if rv.Kind() == reflect.Array {
			it := vals[i].ElementIterator()
			for j := 0; it.Next(); j++ {
				_, ev := it.Element()
				if err := gocty.FromCtyValue(ev, rv.Index(j).Addr().Interface()); err != nil {
					return fmt.Errorf("ask: decode destination %d element %d: %w", i, j, err)
				}
			}
			continue
		}
		if err := gocty.FromCtyValue(vals[i], dest); err != nil {
			return fmt.Errorf("ask: decode destination %d: %w", i, err)
		}
	}
	return nil
}
