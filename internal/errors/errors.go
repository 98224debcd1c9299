// Package errors defines the stable error code system for flock.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Every fatal condition maps to exactly one of these.
const (
	EUsage Code = "E_USAGE"

	// Config file problems: missing, malformed, empty agents array.
	EConfig Code = "E_CONFIG"

	// Roster validation problems: missing name, scalar command,
	// missing task, unsupported tool.
	EValidation Code = "E_VALIDATION"

	// Repository problems: root is not a git repo, git exited non-zero.
	ENoRepo    Code = "E_NO_REPO"
	EGitFailed Code = "E_GIT_FAILED"

	// Platform problems: pinned terminal preference not satisfiable.
	EPlatform Code = "E_PLATFORM"

	// Interactive confirmation mismatch or aborted prompt.
	EConfirmFailed Code = "E_CONFIRM_FAILED"

	EIO       Code = "E_IO"
	EInternal Code = "E_INTERNAL"
)

// FlockError is the standard error type for flock errors.
type FlockError struct {
	Code  Code
	Msg   string
	Cause error
}

// Error returns the stable error format: "CODE: message".
func (e *FlockError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *FlockError) Unwrap() error {
	return e.Cause
}

// New creates a new FlockError with the given code and message.
func New(code Code, msg string) error {
	return &FlockError{Code: code, Msg: msg}
}

// Newf creates a new FlockError with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &FlockError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new FlockError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &FlockError{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if not a FlockError.
func GetCode(err error) Code {
	var fe *FlockError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// ExitCode returns the process exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w as the single stable stderr line:
//
//	[ERROR] <message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var fe *FlockError
	if errors.As(err, &fe) {
		fmt.Fprintf(w, "[ERROR] %s\n", fe.Msg)
		return
	}
	fmt.Fprintf(w, "[ERROR] %s\n", err.Error())
}
