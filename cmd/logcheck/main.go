package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/clash-verge-rev/clash-verge-logging-check/internal/cli"
	"github.com/clash-verge-rev/clash-verge-logging-check/pkg/logcheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(logcheck.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(logcheck.ExitCodeForError(err))
	}
}
