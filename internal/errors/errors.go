package errors

import (
	"errors"
	"fmt"
)

// Exit codes for sandbox-ctl
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitPresetNotFound = 2
	ExitAPIError       = 3
	ExitCreateFailed   = 4
	ExitConfigError    = 5
	ExitCancelled      = 6
	ExitNotATerminal   = 7
)

// SandboxError is the base error type for sandbox-ctl
type SandboxError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SandboxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SandboxError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SandboxError) ExitCode() int {
	return e.Code
}

// New creates a new SandboxError
func New(code int, message string) *SandboxError {
	return &SandboxError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SandboxError
func Wrap(code int, message string, cause error) *SandboxError {
	return &SandboxError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// PresetNotFound returns an error for an unknown preset id
func PresetNotFound(id string) *SandboxError {
	return New(ExitPresetNotFound, fmt.Sprintf("preset not found: %s", id))
}

// APIError returns an error for failed calls to the sandbox API
func APIError(op string, cause error) *SandboxError {
	return Wrap(ExitAPIError, fmt.Sprintf("api %s failed", op), cause)
}

// CreateFailed returns an error for a rejected creation request
func CreateFailed(title string, cause error) *SandboxError {
	return Wrap(ExitCreateFailed, fmt.Sprintf("failed to create sandbox %q", title), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *SandboxError {
	return Wrap(ExitConfigError, message, cause)
}

// Cancelled returns an error for a wizard the user backed out of
func Cancelled() *SandboxError {
	return New(ExitCancelled, "cancelled")
}

// NotATerminal returns an error when an interactive command has no TTY
func NotATerminal() *SandboxError {
	return New(ExitNotATerminal, "interactive mode requires a terminal; use 'sandbox-ctl create' instead")
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SandboxError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var sandboxErr *SandboxError
	if errors.As(err, &sandboxErr) {
		return sandboxErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
