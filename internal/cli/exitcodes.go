package cli

import "errors"

// Exit codes returned by the lsbsteg binary.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitNoMessage = 2
)

// ErrNoMessage signals that reveal found no marker. It is reported through
// the exit code rather than logged as a failure.
var ErrNoMessage = errors.New("no hidden message found")

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoMessage):
		return ExitNoMessage
	}
	return ExitError
}
