package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: config errors, terminal failures, or anything unexpected.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, bad flag values, or unexpected arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a route path or name that is not in the table.
	ExitNotFound = 3
)

// ExitErr wraps an error with the process exit code it should produce.
type ExitErr struct {
	Code int
	Err  error

	// Reported is set when the command already printed the error
	Reported bool
}

func (e *ExitErr) Error() string {
	return e.Err.Error()
}

func (e *ExitErr) Unwrap() error {
	return e.Err
}

// WithExitCode attaches code to err. A nil err stays nil.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitErr{Code: code, Err: err}
}

// Reported is WithExitCode for errors the command already printed.
func Reported(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitErr{Code: code, Err: err, Reported: true}
}

// IsReported reports whether err was already printed to the user.
func IsReported(err error) bool {
	var exitErr *ExitErr
	return errors.As(err, &exitErr) && exitErr.Reported
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the attached
// code for an *ExitErr, ExitError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
