package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func numList(ns ...int64) cty.Value {
	if len(ns) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(ns))
	for i, n := range ns {
		vals[i] = cty.NumberIntVal(n)
	}
	return cty.ListVal(vals)
}

func TestFill_SingleValue(t *testing.T) {
	t.Parallel()

	t.Run("number token", func(t *testing.T) {
		vals, err := fill("42", []Slot{Value(cty.Number)})
		require.NoError(t, err)
		require.Len(t, vals, 1)
		assert.True(t, vals[0].RawEquals(cty.NumberIntVal(42)))
	})

	t.Run("malformed number is a parse failure", func(t *testing.T) {
		_, err := fill("forty-two", []Slot{Value(cty.Number)})
		assert.ErrorIs(t, err, errParseFailure)
	})

	t.Run("missing token is a parse failure", func(t *testing.T) {
		_, err := fill("", []Slot{Value(cty.Number)})
		assert.ErrorIs(t, err, errParseFailure)
	})

	t.Run("trailing token is excess input", func(t *testing.T) {
		_, err := fill("42 extra", []Slot{Value(cty.Number)})
		assert.ErrorIs(t, err, errExcessInput)
	})

	t.Run("bool token", func(t *testing.T) {
		vals, err := fill("true", []Slot{Value(cty.Bool)})
		require.NoError(t, err)
		assert.True(t, vals[0].True())
	})
}

func TestFill_EmptyLineSingleString(t *testing.T) {
	t.Parallel()

	t.Run("empty line fills a lone string slot with the empty string", func(t *testing.T) {
		vals, err := fill("", []Slot{Value(cty.String)})
		require.NoError(t, err)
		require.Len(t, vals, 1)
		assert.Equal(t, "", vals[0].AsString())
	})

	t.Run("empty line with a lone number slot is still a parse failure", func(t *testing.T) {
		_, err := fill("", []Slot{Value(cty.Number)})
		assert.ErrorIs(t, err, errParseFailure)
	})

	t.Run("empty line with two string slots is a parse failure", func(t *testing.T) {
		_, err := fill("", []Slot{Value(cty.String), Value(cty.String)})
		assert.ErrorIs(t, err, errParseFailure)
	})
}

func TestFill_FixedSeq(t *testing.T) {
	t.Parallel()

	t.Run("exact arity succeeds", func(t *testing.T) {
		vals, err := fill("1 2 3", []Slot{FixedSeq(cty.Number, 3)})
		require.NoError(t, err)
		assert.True(t, vals[0].RawEquals(numList(1, 2, 3)))
	})

	t.Run("insufficient tokens is a parse failure", func(t *testing.T) {
		_, err := fill("1 2", []Slot{FixedSeq(cty.Number, 3)})
		assert.ErrorIs(t, err, errParseFailure)
	})

	t.Run("too many tokens is excess input", func(t *testing.T) {
		_, err := fill("1 2 3 4", []Slot{FixedSeq(cty.Number, 3)})
		assert.ErrorIs(t, err, errExcessInput)
	})
}

func TestFill_Remainder(t *testing.T) {
	t.Parallel()

	t.Run("consumes all parseable tokens", func(t *testing.T) {
		vals, err := fill("1 2 3", []Slot{Remainder(cty.Number)})
		require.NoError(t, err)
		assert.True(t, vals[0].RawEquals(numList(1, 2, 3)))
	})

	t.Run("trailing unparseable token ends the sequence without error", func(t *testing.T) {
		vals, err := fill("1 2 3 abc", []Slot{Remainder(cty.Number)})
		require.NoError(t, err)
		assert.True(t, vals[0].RawEquals(numList(1, 2, 3)))
	})

	t.Run("no tokens yields an empty sequence", func(t *testing.T) {
		vals, err := fill("", []Slot{Remainder(cty.Number)})
		require.NoError(t, err)
		assert.Equal(t, 0, vals[0].LengthInt())
	})

	t.Run("scalar slots before the remainder fill first", func(t *testing.T) {
		vals, err := fill("label 1 2", []Slot{Value(cty.String), Remainder(cty.Number)})
		require.NoError(t, err)
		require.Len(t, vals, 2)
		assert.Equal(t, "label", vals[0].AsString())
		assert.True(t, vals[1].RawEquals(numList(1, 2)))
	})
}

func TestFill_HeterogeneousTuple(t *testing.T) {
	t.Parallel()

	vals, err := fill("5 hello", []Slot{Value(cty.Number), Value(cty.String)})
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.True(t, vals[0].RawEquals(cty.NumberIntVal(5)))
	assert.Equal(t, "hello", vals[1].AsString())
}

func TestTokenCursor(t *testing.T) {
	t.Parallel()

	cur := newTokenCursor("  one\ttwo  three ")
	tok, ok := cur.peek()
	require.True(t, ok)
	assert.Equal(t, "one", tok)
	assert.Equal(t, 3, cur.leftover())

	tok, ok = cur.next()
	require.True(t, ok)
	assert.Equal(t, "one", tok)

	cur.next()
	cur.next()
	_, ok = cur.next()
	assert.False(t, ok)
	assert.Equal(t, 0, cur.leftover())
}
