// Package logger writes structured logs to a file, since the TUI owns the terminal.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is used when no path is configured.
const DefaultLogPath = "/tmp/arkmgr.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	base     *slog.Logger
	logFile  *os.File
	logPath  string
)

// Init opens path for appending and routes all loggers to it. Calling Init
// again switches to the new path and closes the previous file.
func Init(path string) error {
	if path == "" {
		path = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("logger initialized", "path", path)
	return nil
}

// Close flushes and closes the log file. Later calls log nowhere.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	base = nil
	logPath = ""
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Path returns the active log file, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetDebug toggles debug level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
		return
	}
	levelVar.Set(slog.LevelInfo)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return base
}

// WithComponent returns a logger tagged with a component attribute.
// The handler is resolved per call so loggers created before Init still work.
func WithComponent(name string) *slog.Logger {
	return slog.New(componentHandler{name: name})
}

type componentHandler struct {
	name  string
	attrs []slog.Attr
	group string
}

func (h componentHandler) inner() slog.Handler {
	hd := current().Handler().WithAttrs([]slog.Attr{slog.String("component", h.name)})
	if len(h.attrs) > 0 {
		hd = hd.WithAttrs(h.attrs)
	}
	if h.group != "" {
		hd = hd.WithGroup(h.group)
	}
	return hd
}

func (h componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= levelVar.Level()
}

func (h componentHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner().Handle(ctx, r)
}

func (h componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return next
}

func (h componentHandler) WithGroup(name string) slog.Handler {
	next := h
	next.group = name
	return next
}

func logf(level slog.Level, format string, args ...any) {
	l := current()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }
