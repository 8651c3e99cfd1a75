package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fsh/internal/cli"
	"github.com/vvka-141/fsh/pkg/fsh"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fsh.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(fsh.ExitCodeForError(err))
	}
}
