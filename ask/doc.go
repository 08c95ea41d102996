// Package ask implements an interactive prompt loop for line-oriented
// console input. An Asker writes a prompt, reads one line from its input
// stream, parses the line's whitespace-delimited tokens into typed slots,
// validates the parsed values against a caller-supplied predicate, and
// repeats until every slot parses and validates. End of input is the only
// way out of the loop besides success.
//
// Values are typed with the cty type system, so a slot can request a
// string, a number, a bool, a fixed-size sequence, or a greedy trailing
// sequence. Destination-based helpers derive slots from ordinary Go
// pointers:
//
//	asker := ask.New(os.Stdin, os.Stdout)
//	var servings int
//	err := asker.AskInto(ctx, ask.Question{
//		Message:   "How many servings? ",
//		Condition: ask.Positive,
//	}, &servings)
//
// The input and output streams are injected, never global, so tests can
// drive the loop with scripted input and capture the exact transcript.
package ask
