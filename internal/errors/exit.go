package errors

import "fmt"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitUser    = 1 // bad input, unknown item, invalid config
	ExitSystem  = 2 // I/O, network, git
)

// ExitError carries the exit code for an error and an optional line of
// advice printed beneath it.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewUserError returns err as an ExitUser failure.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError returns err as an ExitSystem failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError returns a configuration failure pointing at `config list`.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: wr-ai config list")
}

// ExitCode maps an error chain to a process exit code. Cancellation is a clean
// exit; an explicit ExitError wins over the typed failures beneath it.
func ExitCode(err error) int {
	if err == nil || Is(err, ErrCancelled) {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case Is(err, ErrFetch), Is(err, ErrPathTraversal), Is(err, ErrJSONParse):
		return ExitSystem
	default:
		return ExitUser
	}
}
