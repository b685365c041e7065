package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which optional messages a ConsoleLogger emits.
type Level int

const (
	// LevelInfo emits Info and Error only.
	LevelInfo Level = iota
	// LevelVerbose adds Verbose messages.
	LevelVerbose
	// LevelTrace adds Verbose and Trace messages.
	LevelTrace
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	level Level
	out   io.Writer
	mu    sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
func NewConsoleLogger(level Level) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a ConsoleLogger writing to w.
func NewWriterLogger(w io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		level: level,
		out:   w,
	}
}

// LevelFromFlags maps the --verbose and --trace flags to a Level.
func LevelFromFlags(verbose, trace bool) Level {
	switch {
	case trace:
		return LevelTrace
	case verbose:
		return LevelVerbose
	default:
		return LevelInfo
	}
}

// Trace logs fine-grained detail if tracing is enabled.
func (l *ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.level < LevelTrace {
		return
	}
	l.write("[TRACE] ", format, args)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if l.level < LevelVerbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}
