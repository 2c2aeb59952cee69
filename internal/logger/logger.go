// Package logger provides leveled logging for the dispatch tool.
//
// The terminal belongs to the menu and the TUI, so nothing is written until
// Init is called with a log file. Files are rotated with lumberjack.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the severity level of a log message.
type LogLevel string

const (
	Debug LogLevel = "DEBUG"
	Info  LogLevel = "INFO"
	Warn  LogLevel = "WARN"
	Error LogLevel = "ERROR"
)

var (
	mu         sync.Mutex
	minLevel   = Info
	out        = log.New(io.Discard, "", 0)
	fileLogger *lumberjack.Logger
)

// levelPriority returns the numeric priority of a log level (higher = more severe)
func levelPriority(level LogLevel) int {
	switch level {
	case Debug:
		return 0
	case Info:
		return 1
	case Warn:
		return 2
	case Error:
		return 3
	default:
		return 1
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to a
// LogLevel. Anything else is Info.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// SetLevel sets the minimum log level. Valid values: "debug", "info", "warn", "error"
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = ParseLevel(level)
}

// Level returns the current minimum level.
func Level() LogLevel {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Init starts writing log lines to path, rotating the file as it grows.
// An empty path keeps logging disabled.
func Init(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	fileLogger = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	out.SetOutput(fileLogger)
	return nil
}

// SetOutput redirects log lines to w. Used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
}

// Close flushes and closes the log file, if any, and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out.SetOutput(io.Discard)
	if fileLogger == nil {
		return nil
	}
	err := fileLogger.Close()
	fileLogger = nil
	return err
}

// Log writes a formatted message at the specified level.
func Log(level LogLevel, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if levelPriority(level) < levelPriority(minLevel) {
		return
	}

	msg := fmt.Sprintf(format, v...)
	// Format: timestamp [LEVEL] message
	out.Printf("%s [%s] %s", time.Now().Format(time.RFC3339), level, msg)
}

// Infof logs a formatted message at INFO level.
func Infof(format string, v ...interface{}) {
	Log(Info, format, v...)
}

// Errorf logs a formatted message at ERROR level.
func Errorf(format string, v ...interface{}) {
	Log(Error, format, v...)
}

// Debugf logs a formatted message at DEBUG level.
func Debugf(format string, v ...interface{}) {
	Log(Debug, format, v...)
}

// Warnf logs a formatted message at WARN level.
func Warnf(format string, v ...interface{}) {
	Log(Warn, format, v...)
}
