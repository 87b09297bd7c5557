package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents a logging level
type Level int

const (
	// LevelDebug logs every key press and normalized expression
	LevelDebug Level = iota
	// LevelInfo logs informational messages
	LevelInfo
	// LevelWarn logs warnings
	LevelWarn
	// LevelError logs errors
	LevelError
	// LevelNone disables all logging
	LevelNone
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "NONE"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelNone {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel parses a string into a Level, defaulting to LevelInfo
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	}
	return LevelInfo
}

// Logger is a leveled line logger. The calculator engines never write to
// the terminal, so all output goes to a file or is discarded. The level is
// fixed when the logger is built.
type Logger struct {
	level  Level
	prefix string
	out    *output
}

// output is the destination shared by a logger and its children.
type output struct {
	mu     sync.Mutex
	log    *log.Logger
	closer io.Closer
	closed bool
}

var (
	global atomic.Pointer[Logger]
	nop    = &Logger{level: LevelNone, out: &output{closed: true}}
)

// Init installs the global logger. Calling it again replaces (and closes)
// the previous one.
func Init(level Level, logPath string) error {
	l, err := New(level, logPath, "")
	if err != nil {
		return err
	}
	if prev := global.Swap(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Global returns the installed logger, a disabled one until Init runs
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return nop
}

// New creates a Logger appending to logPath. An empty path or LevelNone
// yields a disabled logger.
func New(level Level, logPath string, prefix string) (*Logger, error) {
	if level == LevelNone || logPath == "" {
		return &Logger{level: LevelNone, prefix: prefix, out: &output{closed: true}}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriter(level, file, prefix)
	l.out.closer = file
	return l, nil
}

// NewWriter creates a Logger writing to w
func NewWriter(level Level, w io.Writer, prefix string) *Logger {
	return &Logger{level: level, prefix: prefix, out: &output{log: log.New(w, "", 0)}}
}

// WithPrefix creates a child logger sharing the same output
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l.prefix != "" {
		prefix = l.prefix + ":" + prefix
	}
	return &Logger{level: l.level, prefix: prefix, out: l.out}
}

// Enabled reports whether messages at level are written
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level && l.level != LevelNone
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	tag := ""
	if l.prefix != "" {
		tag = "[" + l.prefix + "] "
	}
	line := fmt.Sprintf("%s [%s] %s%s",
		time.Now().Format("2006-01-02 15:04:05.000"), level, tag, fmt.Sprintf(format, args...))

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if !l.out.closed {
		l.out.log.Print(line)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

// Close closes the underlying file, if any. Later writes through the
// logger or any child are dropped.
func (l *Logger) Close() error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if l.out.closer == nil {
		return nil
	}
	err := l.out.closer.Close()
	l.out.closer = nil
	l.out.closed = true
	return err
}

// Debug logs through the global logger
func Debug(format string, args ...interface{}) { Global().Debug(format, args...) }

// Info logs through the global logger
func Info(format string, args ...interface{}) { Global().Info(format, args...) }

// Warn logs through the global logger
func Warn(format string, args ...interface{}) { Global().Warn(format, args...) }
