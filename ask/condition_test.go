package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestPredicates(t *testing.T) {
	t.Parallel()

	t.Run("Positive", func(t *testing.T) {
		assert.True(t, Positive(cty.NumberIntVal(1)))
		assert.False(t, Positive(cty.NumberIntVal(0)))
		assert.False(t, Positive(cty.NumberIntVal(-3)))
		assert.False(t, Positive(cty.StringVal("1")))
	})

	t.Run("NonEmpty", func(t *testing.T) {
		assert.True(t, NonEmpty(cty.StringVal("x")))
		assert.False(t, NonEmpty(cty.StringVal("")))
		assert.False(t, NonEmpty(cty.NumberIntVal(1)))
	})

	t.Run("Always", func(t *testing.T) {
		assert.True(t, Always(cty.NilVal))
	})
}

func TestCheck_AllSlotsMustPass(t *testing.T) {
	t.Parallel()

	vals := []cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(-1)}
	assert.False(t, check(vals, Positive))
	assert.True(t, check(vals, Always))
}

func TestCheck_SequenceSeenAsOneValue(t *testing.T) {
	t.Parallel()

	// The predicate receives the list itself, not its elements.
	var seen []cty.Value
	p := func(v cty.Value) bool {
		seen = append(seen, v)
		return true
	}
	list := numList(1, 2, 3)
	assert.True(t, check([]cty.Value{list}, p))
	assert.Len(t, seen, 1)
	assert.True(t, seen[0].RawEquals(list))
}
