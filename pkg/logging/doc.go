// Package logging provides structured logging utilities for ocrunner.
//
// # Overview
//
// This package wraps the standard library slog package with ocrunner defaults
// so that the CLI and the HTTP client log in one consistent shape. It supports
// environment-based log level configuration, module/version context injection,
// and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Request traces with source location
//   - INFO: General informational messages
//   - WARN/WARNING: Data-shape problems such as a user record without a login
//   - ERROR: Failures requiring attention
//
// Unrecognized values fall back to INFO.
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("ocrunner", version, "warn")
//	slog.Debug("request completed", "method", "GET", "status", 200)
//
// Creating a logger bound to a specific writer (tests):
//
//	logger := logging.NewStructuredLoggerWithWriter(&buf, "ocrunner", "dev", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is passed:
//
//	LOG_LEVEL=debug ocrunner taskflows ls
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never mix with the
// command output on stdout:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "user login name not found",
//	    "module": "ocrunner",
//	    "version": "v1.0.0",
//	    "userId": "5a1f..."
//	}
package logging
