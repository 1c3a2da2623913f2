package logger

import (
	"errors"
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

// Level orders log messages by severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var levelColors = [...]string{"\033[36m", "\033[32m", "\033[33m", "\033[31m"}

const colorReset = "\033[0m"

func (l Level) valid() bool { return l >= DebugLevel && l <= ErrorLevel }

func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel maps a case-insensitive level name to a Level. "warning" is
// accepted as an alias of "warn".
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(s)
	if name == "WARNING" {
		return WarnLevel, nil
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level: %s", s)
}

// Logger is implemented by MultiLogger; callers normally use the
// package-level helpers instead.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetLevel(level Level)
	Close() error
}

// Sink receives every message that passes the logger's level filter.
type Sink interface {
	Write(level Level, timestamp time.Time, message string) error
	Close() error
}

// lineWriter serializes formatted lines onto a single stream.
type lineWriter struct {
	mu         sync.Mutex
	w          io.Writer
	timeLayout string
}

func (lw *lineWriter) writeLine(prefix, suffix string, level Level, timestamp time.Time, message string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, err := fmt.Fprintf(lw.w, "%s[%s] %s: %s%s\n", prefix, timestamp.Format(lw.timeLayout), level, message, suffix)
	return err
}

// ConsoleSink prints short timestamped lines, optionally ANSI-colored by level.
type ConsoleSink struct {
	lineWriter
	colorize bool
}

// NewConsoleSink writes to out, or to stderr when out is nil.
func NewConsoleSink(out io.Writer, colorize bool) *ConsoleSink {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleSink{lineWriter: lineWriter{w: out, timeLayout: time.TimeOnly}, colorize: colorize}
}

func (s *ConsoleSink) Write(level Level, timestamp time.Time, message string) error {
	if s.colorize && level.valid() {
		return s.writeLine(levelColors[level], colorReset, level, timestamp, message)
	}
	return s.writeLine("", "", level, timestamp, message)
}

func (s *ConsoleSink) Close() error { return nil }

// FileSink appends full-date lines to a file, creating its directory.
type FileSink struct {
	lineWriter
	file *os.File
}

func NewFileSink(filename string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileSink{
		lineWriter: lineWriter{w: file, timeLayout: time.DateTime},
		file:       file,
	}, nil
}

func (s *FileSink) Write(level Level, timestamp time.Time, message string) error {
	return s.writeLine("", "", level, timestamp, message)
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// MultiLogger fans each message out to every sink. New loggers start at
// WarnLevel so that only -v and -vv surface progress detail.
type MultiLogger struct {
	sinks []Sink
	level atomic.Int32
}

func NewMultiLogger(sinks ...Sink) *MultiLogger {
	l := &MultiLogger{sinks: sinks}
	l.level.Store(int32(WarnLevel))
	return l
}

func (l *MultiLogger) SetLevel(level Level) { l.level.Store(int32(level)) }

func (l *MultiLogger) logf(level Level, format string, args []any) {
	if level < Level(l.level.Load()) {
		return
	}
	message := fmt.Sprintf(format, args...)
	now := time.Now()
	for _, sink := range l.sinks {
		if err := sink.Write(level, now, message); err != nil {
			log.Printf("Failed to write to sink: %v", err)
		}
	}
}

func (l *MultiLogger) Debug(format string, args ...any) { l.logf(DebugLevel, format, args) }
func (l *MultiLogger) Info(format string, args ...any)  { l.logf(InfoLevel, format, args) }
func (l *MultiLogger) Warn(format string, args ...any)  { l.logf(WarnLevel, format, args) }
func (l *MultiLogger) Error(format string, args ...any) { l.logf(ErrorLevel, format, args) }

// Close closes every sink and reports all failures together.
func (l *MultiLogger) Close() error {
	errs := make([]error, 0, len(l.sinks))
	for _, sink := range l.sinks {
		errs = append(errs, sink.Close())
	}
	return errors.Join(errs...)
}

var (
	globalMu     sync.Mutex
	globalLogger Logger
)

// Initialize installs the process logger unless one is already set. With no
// sinks it logs in color to stderr.
func Initialize(sinks ...Sink) {
	globalMu.Lock()
	defer globalMu.Unlock()
	initLocked(sinks)
}

func initLocked(sinks []Sink) {
	if globalLogger != nil {
		return
	}
	if len(sinks) == 0 {
		sinks = []Sink{NewConsoleSink(os.Stderr, true)}
	}
	globalLogger = NewMultiLogger(sinks...)
}

// Replace swaps in l and closes the logger it replaces.
func Replace(l Logger) {
	globalMu.Lock()
	prev := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if prev == nil || prev == l {
		return
	}
	if err := prev.Close(); err != nil {
		log.Printf("Failed to close logger: %v", err)
	}
}

// Get returns the process logger, installing the default one on first use.
func Get() Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	initLocked(nil)
	return globalLogger
}

func Debug(format string, args ...any) { Get().Debug(format, args...) }
func Info(format string, args ...any)  { Get().Info(format, args...) }
func Warn(format string, args ...any)  { Get().Warn(format, args...) }
func Error(format string, args ...any) { Get().Error(format, args...) }
func SetLevel(level Level)             { Get().SetLevel(level) }
