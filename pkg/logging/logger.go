// Package logging provides structured logging for go-gamekit. It wraps
// Go's standard slog package with a consistent JSON format, an
// environment-controlled level, and correlation IDs carried through
// context so related trigger and update events can be grouped.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with correlation ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with JSON output on stdout. The level is
// controlled by the GAMEKIT_LOG_LEVEL environment variable (DEBUG,
// INFO, WARN, ERROR; default INFO).
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: getLogLevelFromEnv(),
	})
	return &Logger{slog.New(handler)}
}

// NewLoggerWithHandler creates a Logger over a caller-supplied handler.
// Tests use this to capture output.
func NewLoggerWithHandler(handler slog.Handler) *Logger {
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message, appending the context's correlation ID
// when one is present.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		args = append(args, "correlation_id", correlationID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

// correlationIDKey is the context key for correlation IDs
type correlationIDKey struct{}

// WithCorrelationID adds a correlation ID to the context, generating a
// fresh one when the argument is empty.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if correlationID == "" {
		correlationID = GenerateCorrelationID()
	}
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// GetCorrelationID extracts the correlation ID from the context.
// Returns empty string if no correlation ID is present.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID creates a new random correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// getLogLevelFromEnv determines the log level from environment variables.
func getLogLevelFromEnv() slog.Level {
	levelStr := strings.ToUpper(os.Getenv("GAMEKIT_LOG_LEVEL"))
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WrapError wraps an error with additional context information,
// preserving the original error for errors.Is/As.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
