// Package logging provides the leveled console+file logger used across
// the engine, the registry, and the demo command.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// LogLevel is one of the five severities the logger supports.
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes every level to a log file and INFO-and-above to stdout.
type Logger struct {
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	file          *os.File
}

var globalLogger *Logger

// Init sets up the global logger, creating logs/<timestamp>.log. Safe to
// call more than once; the previous file handle is closed first.
func Init() error {
	if globalLogger != nil {
		Close()
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join("logs", fmt.Sprintf("blocknetwork_%s.log", timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	globalLogger = &Logger{
		consoleLogger: log.New(os.Stdout, "", log.LstdFlags),
		fileLogger:    log.New(file, "", log.LstdFlags),
		file:          file,
	}
	return nil
}

// Close flushes and releases the log file. A no-op if Init was never
// called — tests that exercise netgraph/registry directly never pay for
// file I/O unless they call Init themselves.
func Close() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger = nil
	}
}

// Trace logs at TRACE level.
func Trace(format string, args ...interface{}) { logMessage(TRACE, format, args...) }

// Debug logs at DEBUG level.
func Debug(format string, args ...interface{}) { logMessage(DEBUG, format, args...) }

// Info logs at INFO level.
func Info(format string, args ...interface{}) { logMessage(INFO, format, args...) }

// Warn logs at WARN level.
func Warn(format string, args ...interface{}) { logMessage(WARN, format, args...) }

// Error logs at ERROR level.
func Error(format string, args ...interface{}) { logMessage(ERROR, format, args...) }

func logMessage(level LogLevel, format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}

	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
	globalLogger.fileLogger.Println(message)
	if level >= INFO {
		globalLogger.consoleLogger.Println(message)
	}
}
