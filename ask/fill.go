package ask

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// tokenCursor walks the whitespace-delimited tokens of one line. It is the
// shared position that slots consume from, so "how much of the line was
// used" falls out of the cursor instead of stream state flags.
type tokenCursor struct {
	toks []string
	pos  int
}

func newTokenCursor(line string) *tokenCursor {
	return &tokenCursor{toks: strings.Fields(line)}
}

func (c *tokenCursor) peek() (string, bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	return c.toks[c.pos], true
}

func (c *tokenCursor) next() (string, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

func (c *tokenCursor) leftover() int {
	return len(c.toks) - c.pos
}

// parse converts one token to the slot's type and applies the slot's
// verify narrowing, if any. A failure either way is the Malformed outcome;
// the caller decides whether that rejects the line or just ends a trailing
// sequence.
func (s Slot) parse(tok string) (cty.Value, error) {
	val, err := convert.Convert(cty.StringVal(tok), s.typ)
	if err != nil {
		return cty.NilVal, err
	}
	if s.verify != nil {
		if err := s.verify(val); err != nil {
			return cty.NilVal, err
		}
	}
	return val, nil
}

// fill parses the line's tokens into the slots, in order, and reports one
// value per slot. It returns errParseFailure when a token is malformed or
// missing for a Value or FixedSeq slot, and errExcessInput when tokens
// remain after the final slot, unless that slot is a Remainder, whose job
// is to consume whatever it can.
func fill(line string, slots []Slot) ([]cty.Value, error) {
	// A lone unconstrained string slot accepts a blank answer as the empty
	// string rather than reporting a missing token.
	if len(slots) == 1 && slots[0].kind == kindValue && slots[0].typ == cty.String && line == "" {
		return []cty.Value{cty.StringVal("")}, nil
	}

	cur := newTokenCursor(line)
	vals := make([]cty.Value, 0, len(slots))
	for i, slot := range slots {
		switch slot.kind {
		case kindValue:
			val, err := fillOne(cur, slot)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", i, err)
			}
			vals = append(vals, val)

		case kindFixedSeq:
			elems := make([]cty.Value, 0, slot.n)
			for j := 0; j < slot.n; j++ {
				val, err := fillOne(cur, slot)
				if err != nil {
					return nil, fmt.Errorf("slot %d position %d: %w", i, j, err)
				}
				elems = append(elems, val)
			}
			vals = append(vals, listOf(slot.typ, elems))

		case kindRemainder:
			var elems []cty.Value
			for {
				tok, ok := cur.peek()
				if !ok {
					break
				}
				val, err := slot.parse(tok)
				if err != nil {
					// Expected end of the sequence, not a rejection.
					break
				}
				cur.next()
				elems = append(elems, val)
			}
			vals = append(vals, listOf(slot.typ, elems))
		}
	}

	if cur.leftover() > 0 && slots[len(slots)-1].kind != kindRemainder {
		return nil, errExcessInput
	}
	return vals, nil
}

func fillOne(cur *tokenCursor, s Slot) (cty.Value, error) {
	tok, ok := cur.next()
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: missing token", errParseFailure)
	}
	val, err := s.parse(tok)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: %q: %v", errParseFailure, tok, err)
	}
	return val, nil
}

func listOf(ty cty.Type, elems []cty.Value) cty.Value {
	if len(elems) == 0 {
		return cty.ListValEmpty(ty)
	}
	return cty.ListVal(elems)
}
