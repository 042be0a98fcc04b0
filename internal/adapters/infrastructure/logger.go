package infrastructure

import (
	"context"
	"log/slog"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port on top of the application slog logger
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps log. A nil log falls back to the process default.
func NewSlogLoggerAdapter(log *logger.Logger) *SlogLoggerAdapter {
	if log == nil {
		return &SlogLoggerAdapter{logger: slog.Default()}
	}
	return &SlogLoggerAdapter{logger: log.Logger}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.log(slog.LevelError, msg, fields)
}

// With returns an adapter that adds fields to every entry
func (l *SlogLoggerAdapter) With(fields ...ports.Field) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l.logger.With(toAttrs(fields)...)}
}

func (l *SlogLoggerAdapter) log(level slog.Level, msg string, fields []ports.Field) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, msg, toAttrs(fields)...)
}

func toAttrs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		args = append(args, slog.Any(field.Key, field.Value))
	}
	return args
}
