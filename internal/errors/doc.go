// Package errors provides typed errors with exit codes for sandbox-ctl.
//
// # Error Types
//
// SandboxError is the base error type that wraps an error with an exit code:
//
//	type SandboxError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess        = 0  // Success
//	ExitGeneralError   = 1  // General/unknown errors
//	ExitPresetNotFound = 2  // Preset id is not in the catalog
//	ExitAPIError       = 3  // Sandbox API unreachable or misbehaving
//	ExitCreateFailed   = 4  // Creation request was rejected
//	ExitConfigError    = 5  // Configuration error
//	ExitCancelled      = 6  // Wizard cancelled by the user
//	ExitNotATerminal   = 7  // Interactive command without a TTY
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
