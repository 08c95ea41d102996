package ask

import "errors"

// ErrEndOfInput is returned by Ask when the input stream is exhausted
// before any characters of a line are available. It aborts the whole
// prompt loop; it is never retried.
var ErrEndOfInput = errors.New("ask: end of input")

// ReadError wraps a non-EOF failure of the underlying input stream. The
// stream is considered unusable, so Ask reports the fixed diagnostic and
// returns instead of retrying.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "ask: read input: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Attempt-local conditions. These never escape Ask; they only route the
// loop to the right message before the next attempt.
var (
	errParseFailure = errors.New("parse failure")
	errExcessInput  = errors.New("excess input")
)
