// Package logging is the application's own diagnostic logger. Lines go to a
// configurable writer and, optionally, into a log store so they can be read
// in the overlay.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Qendolin/log-overlay/pkg/logstore"
)

// Logger writes levelled lines to an io.Writer and mirrors them into a store.
type Logger struct {
	mu     sync.Mutex
	mirror *logstore.LogStore
	writer io.Writer
	goLog  *log.Logger
	debug  bool

	warnCount  atomic.Int64
	errorCount atomic.Int64
}

// NewLogger creates and initializes a new Logger instance.
func NewLogger() *Logger {
	l := &Logger{
		writer: io.Discard, // Default to discarding output
	}
	l.goLog = log.New(l, "", 0) // The logger will write through our Write method
	return l
}

// Write implements the io.Writer interface. This allows the standard log package
// to write through our logger, which will then dispatch to the configured writer.
func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.writer == nil {
		return len(p), nil
	}
	return l.writer.Write(p)
}

// SetWriter sets the output destination for the logger.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetMirror makes every logged line also appear in store. Pass nil to stop.
func (l *Logger) SetMirror(store *logstore.LogStore) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mirror = store
}

// SetDebug enables or disables debug-level logging.
func (l *Logger) SetDebug(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enable
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Counts returns how many warnings and errors have been logged.
func (l *Logger) Counts() (warnings, errors int) {
	return int(l.warnCount.Load()), int(l.errorCount.Load())
}

func (l *Logger) emit(level LogLevel, message string) {
	l.mu.Lock()
	debug, mirror := l.debug, l.mirror
	l.mu.Unlock()

	if level == LevelDebug && !debug {
		return
	}
	switch level {
	case LevelWarn:
		l.warnCount.Add(1)
	case LevelError:
		l.errorCount.Add(1)
	}

	if mirror != nil {
		mirror.Append(fmt.Sprintf("%-5s %s", level.String(), message))
	}
	logLine := fmt.Sprintf("%s %-5s %s", time.Now().Format("15:04:05.000"), level.String(), message)
	l.goLog.Println(logLine)
}

// log is the internal handler for variadic logging.
func (l *Logger) log(level LogLevel, v ...interface{}) {
	// Use fmt.Sprint to handle the slice of interfaces.
	l.emit(level, strings.TrimSpace(fmt.Sprintln(v...)))
}

// logf is the internal handler for formatted logging.
func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.emit(level, fmt.Sprintf(format, v...))
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.log(LevelInfo, v...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.log(LevelWarn, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.log(LevelError, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// Debug logs a debug message.
func (l *Logger) Debug(v ...interface{}) {
	l.log(LevelDebug, v...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

// ---- Global / Default Logger ----

var defaultLogger = NewLogger()

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger
}

// Info logs an informational message using the default logger.
func Info(v ...interface{}) {
	defaultLogger.Info(v...)
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warn logs a warning message using the default logger.
func Warn(v ...interface{}) {
	defaultLogger.Warn(v...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Error logs an error message using the default logger.
func Error(v ...interface{}) {
	defaultLogger.Error(v...)
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}
