// Package logging provides logging utilities for osbuild-cfg.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted progress messages for the build log
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings.
// Timestamps are dropped since the surrounding container build already
// records them:
//
//	logging.Debug("rendering ssh keys", "count", len(keys))
//	logging.Warn("self-consume disabled", "reason", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Rendering %s...", path)
//	logging.UserSuccess("Applied blueprint %s", path)
//	logging.UserWarning("Dry run: not executing %d commands", n)
//	logging.UserError("Failed: %v", err)
//
// Output destinations (see SetUserOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
package logging
