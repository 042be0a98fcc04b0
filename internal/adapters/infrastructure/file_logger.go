package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// LogLevel orders file log entries by severity
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// FileLoggerAdapter appends one JSON object per line to a log file.
// It backs the provider request logs when WEATHER_LOG_FILE_PATH is set.
type FileLoggerAdapter struct {
	file     *os.File
	minLevel LogLevel
	now      func() time.Time
	mutex    sync.Mutex
}

// FileLoggerOption customizes a FileLoggerAdapter
type FileLoggerOption func(*FileLoggerAdapter)

// WithMinLevel drops entries below level
func WithMinLevel(level LogLevel) FileLoggerOption {
	return func(f *FileLoggerAdapter) {
		f.minLevel = level
	}
}

// WithFileClock overrides the timestamp source
func WithFileClock(now func() time.Time) FileLoggerOption {
	return func(f *FileLoggerAdapter) {
		f.now = now
	}
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories as needed
func NewFileLoggerAdapter(logPath string, opts ...FileLoggerOption) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	f := &FileLoggerAdapter{
		file:     file,
		minLevel: LevelDebug,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write(LevelDebug, msg, fields)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write(LevelInfo, msg, fields)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write(LevelWarn, msg, fields)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write(LevelError, msg, fields)
}

// Close releases the file handle. Later writes are dropped.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) write(level LogLevel, msg string, fields []ports.Field) {
	if level < f.minLevel {
		return
	}

	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}
	entry["timestamp"] = f.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry: %s"}`, escapeJSON(err.Error())))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func escapeJSON(s string) string {
	quoted, _ := json.Marshal(s)
	return string(quoted[1 : len(quoted)-1])
}
