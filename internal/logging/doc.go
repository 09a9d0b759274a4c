// Package logging provides logging utilities for sandbox-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating sandbox", "title", title, "fork", forkTarget)
//	logging.Warn("preset fetch failed", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Fetching presets from %s...", apiURL)
//	logging.UserSuccess("Sandbox %s created", title)
//	logging.UserWarning("No presets available")
//	logging.UserError("Failed to create sandbox: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
