// Package logging provides logging utilities for rzo.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for tracing config resolution (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loaded config", "path", path)
//	logging.Warn("repo config exists but is not readable", "path", fp)
//
// Debug records appear only with --verbose; warnings always do.
//
// # User Output
//
// User-facing messages are prefixed with status glyphs styled by lipgloss:
//
//	logging.UserInfo("No nodes defined in %s", path)
//	logging.UserSuccess("Wrote merged config to %s", out)
//	logging.UserWarning("Override %s is not readable", path)
//	logging.UserError("Resolution failed: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: UserOut (stdout)
//   - UserWarning, UserError: UserErr (stderr)
package logging
