package logging

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes diagnostic messages to stderr, keeping stdout free
// for the report itself. Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w       io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to w,
// typically the command's stderr. If verbose is false, Verbose() calls
// are no-ops.
func NewConsoleLoggerWithWriter(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:       w,
		verbose: verbose,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.w, prefix+format+"\n")
	}
}
