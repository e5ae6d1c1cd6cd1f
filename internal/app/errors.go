package app

import "fmt"

// Exit codes for fatal run failures.
const (
	ExitFailure       = 1
	ExitUsage         = 2
	ExitMissingInput  = 3
	ExitUnbalanced    = 4
	ExitTemplate      = 5
	ExitMissingColumn = 6
)

// FatalError aborts a run. Code is the process exit status the entrypoint
// should use.
type FatalError struct {
	Code int
	Err  error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(code int, format string, args ...any) error {
	return &FatalError{Code: code, Err: fmt.Errorf(format, args...)}
}
