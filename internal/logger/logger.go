// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls which messages are emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	mu      sync.Mutex
	current = LevelInfo
	loggers = map[Level]*log.Logger{
		LevelDebug: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		LevelInfo:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		LevelWarn:  log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		LevelError: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
)

// Init initializes the logger
func Init() {
	// Default initialization
}

// SetOutput redirects all levels to w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		l.SetOutput(w)
	}
}

// SetLevel sets the minimum level that will be emitted
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()

	current = ParseLevel(name)
}

func logf(lvl Level, format string, v ...interface{}) {
	if lvl < current {
		return
	}
	loggers[lvl].Output(3, fmt.Sprintf(format, v...))
}

// Debug logs a debug message
func Debug(format string, v ...interface{}) {
	logf(LevelDebug, format, v...)
}

// Info logs an info message
func Info(format string, v ...interface{}) {
	logf(LevelInfo, format, v...)
}

// Warn logs a warning message
func Warn(format string, v ...interface{}) {
	logf(LevelWarn, format, v...)
}

// Error logs an error message
func Error(format string, v ...interface{}) {
	logf(LevelError, format, v...)
}
