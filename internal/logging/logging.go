// Package logging provides the structured logger shared by the a11yref binaries and MCP tools.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "A11Y_LOG_LEVEL"

type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
)

// Default returns a JSON logger writing to stderr. Stdout is reserved for the MCP stdio transport.
func Default() *slog.Logger {
	return New(os.Stderr, ParseLevel(os.Getenv(LevelEnv)))
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTool returns the default logger annotated with a tool name.
func WithTool(toolName string) *slog.Logger {
	return slog.Default().With(slog.String("tool", toolName))
}

// ContextWithLogger stores a logger in ctx.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or slog.Default.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// ContextWithRequestID stores a request correlation id in ctx.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithContext returns the context logger annotated with the request id when present.
func WithContext(ctx context.Context) *slog.Logger {
	logger := LoggerFromContext(ctx)
	if id := RequestIDFromContext(ctx); id != "" {
		return logger.With(slog.String("request_id", id))
	}
	return logger
}

// RequestEnd logs the completion of a request with its outcome and duration.
func RequestEnd(ctx context.Context, operation string, success bool, duration time.Duration, err error) {
	attrs := []any{
		slog.String("operation", operation),
		slog.Bool("success", success),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		WithContext(ctx).WarnContext(ctx, "Request finished", attrs...)
		return
	}
	WithContext(ctx).DebugContext(ctx, "Request finished", attrs...)
}
