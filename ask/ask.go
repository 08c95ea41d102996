package ask

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fw/askline/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Default message texts, used when the corresponding Question field is
// left empty.
const (
	DefaultMessage        = "Enter input: "
	DefaultParseError     = "Error: parse error"
	DefaultConditionError = "Error: unmet condition"
)

// Fixed texts: the excess-input message is written verbatim on that
// failure path, and the stream diagnostic goes to the diagnostic writer
// when the input source fails outright.
const (
	excessInputMessage   = "Error: excess input"
	streamFailureMessage = "cannot read from input stream"
)

// Asker runs prompt loops over an injected pair of streams. It holds no
// per-question state; exactly one Asker should read from a given input
// stream at a time.
type Asker struct {
	in   *bufio.Reader
	out  io.Writer
	diag io.Writer
}

// Option configures an Asker at construction time.
type Option func(*Asker)

// WithDiagnostics redirects fatal stream diagnostics, which otherwise go
// to os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Asker) {
		a.diag = w
	}
}

// New returns an Asker that prompts on out and reads lines from in.
func New(in io.Reader, out io.Writer, opts ...Option) *Asker {
	a := &Asker{
		in:   bufio.NewReader(in),
		out:  out,
		diag: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Question describes one prompt-loop request: the message shown before
// each attempt, the ordered slots to fill from one line, the acceptance
// predicate, and the two caller-customizable error messages. Zero-value
// fields fall back to the package defaults and the Always predicate.
type Question struct {
	Message        string
	ParseError     string
	ConditionError string
	Condition      Predicate
	Slots          []Slot
}

func (q *Question) normalize() error {
	if q.Message == "" {
		q.Message = DefaultMessage
	}
	if q.ParseError == "" {
		q.ParseError = DefaultParseError
	}
	if q.ConditionError == "" {
		q.ConditionError = DefaultConditionError
	}
	if q.Condition == nil {
		q.Condition = Always
	}
	if len(q.Slots) == 0 {
		return errors.New("ask: question has no slots")
	}
	for i, s := range q.Slots[:len(q.Slots)-1] {
		if s.kind == kindRemainder {
			return fmt.Errorf("ask: remainder slot must be last, found at position %d", i)
		}
	}
	return nil
}

// Ask runs the prompt loop until one line parses into every slot and every
// parsed value satisfies the condition, then returns one value per slot.
// There is no retry limit. The loop aborts with ErrEndOfInput when the
// input stream is exhausted, and with a *ReadError when the stream fails
// for any other reason; a failed stream is never retried. The context
// carries the logger and is checked between attempts, but an in-progress
// read blocks until a line or end of input arrives.
func (a *Asker) Ask(ctx context.Context, q Question) ([]cty.Value, error) {
	if err := q.normalize(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprint(a.out, q.Message)

		line, err := a.readLine()
		if errors.Is(err, ErrEndOfInput) {
			logger.Debug("Input exhausted, aborting prompt loop.")
			return nil, err
		}
		if err != nil {
			fmt.Fprintln(a.diag, streamFailureMessage)
			logger.Error("Input stream failed.", "error", err)
			return nil, err
		}

		vals, err := fill(line, q.Slots)
		switch {
		case errors.Is(err, errExcessInput):
			fmt.Fprintln(a.out, excessInputMessage)
			logger.Debug("Attempt rejected.", "reason", "excess input")
			continue
		case err != nil:
			fmt.Fprintln(a.out, q.ParseError)
			logger.Debug("Attempt rejected.", "reason", "parse failure", "detail", err)
			continue
		}

		if !check(vals, q.Condition) {
			fmt.Fprintln(a.out, q.ConditionError)
			logger.Debug("Attempt rejected.", "reason", "unmet condition")
			continue
		}

		logger.Debug("Attempt accepted.", "slots", len(vals))
		return vals, nil
	}
}

// AskInto runs Ask and decodes the results into the destination pointers,
// one per slot. When q.Slots is empty the slots are derived from the
// destinations: scalar pointers read one token, array pointers read
// exactly len(array) tokens, and a slice pointer greedily reads the rest
// of the line.
func (a *Asker) AskInto(ctx context.Context, q Question, dests ...any) error {
	if len(q.Slots) == 0 {
		slots, err := SlotsFor(dests...)
		if err != nil {
			return err
		}
		q.Slots = slots
	}
	if len(q.Slots) != len(dests) {
		return fmt.Errorf("ask: %d slots for %d destinations", len(q.Slots), len(dests))
	}
	vals, err := a.Ask(ctx, q)
	if err != nil {
		return err
	}
	return decodeInto(vals, dests...)
}

// One asks for a single value of type T. It is shorthand for AskInto with
// one destination.
func One[T any](ctx context.Context, a *Asker, q Question) (T, error) {
	var v T
	err := a.AskInto(ctx, q, &v)
	return v, err
}
