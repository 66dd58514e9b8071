// Package log provides a structured logging interface for lowess
// smoothing operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing
// smoothing-specific structured logging capabilities. The interface is
// designed to integrate seamlessly with Go's standard log/slog package
// and popular logging libraries like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Smoothing-specific structured attributes (operation, data shapes,
//     bandwidth and neighborhood diagnostics)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLoggerWithName("smooth.lowess")
//	logger.Debug("neighborhood selected",
//	    log.SamplesKey, 100,
//	    log.BandwidthKey, 0.66,
//	    log.RadiusKey, 1.25,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's
// log/slog. It is implementation-agnostic, enabling switching between
// logging backends while maintaining a consistent API. Contextual
// loggers with pre-populated fields are created through With.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs carry detailed diagnostic information such as
	// per-query neighborhood sizing and are usually disabled in
	// production environments.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured
	// fields. Warnings indicate recoverable conditions such as the
	// flat-fit fallback on a singular local system.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured
	// fields. If an error value is provided under the ErrAttrKey,
	// stack trace information may be automatically included.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated in
	// all subsequent log messages.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the
	// given level. Use it to avoid expensive attribute construction
	// for records that would be dropped.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring
// loggers, allowing dependency injection and testing with different
// implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for loggers from this provider.
	SetLevel(level Level)
}
