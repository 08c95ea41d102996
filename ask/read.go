package ask

import (
	"errors"
	"io"
	"strings"
)

// readLine acquires exactly one line, without its terminator. EOF before
// any characters is ErrEndOfInput; a final line missing its newline is
// still a valid line. Any other stream failure becomes a ReadError.
func (a *Asker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &ReadError{Err: err}
		}
		if line == "" {
			return "", ErrEndOfInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
