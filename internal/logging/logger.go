package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

// Logger appends timestamped lines to a log file. It only exists when the
// user asked for one; a nil *Logger is valid and discards everything.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New creates (or reuses) the log file at path. An empty path returns a nil
// logger.
func New(path string) (*Logger, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{file: f}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	return err
}

// Append writes a single entry.
func (l *Logger) Append(level Level, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	line := strings.TrimRight(message, "\n")
	fmt.Fprintf(l.file, "%s %-5s %s\n", time.Now().UTC().Format(time.RFC3339), string(level), line)
}

// Info appends an informational entry.
func (l *Logger) Info(format string, args ...any) {
	l.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (l *Logger) Error(format string, args ...any) {
	l.Append(LevelError, fmt.Sprintf(format, args...))
}
