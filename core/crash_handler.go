package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	teardownMu sync.Mutex
	teardown   func()

	// exit is swapped in tests
	exit = os.Exit
)

// SetTeardown registers the function that restores the terminal after a crash
func SetTeardown(fn func()) {
	teardownMu.Lock()
	defer teardownMu.Unlock()
	teardown = fn
}

func runTeardown() {
	teardownMu.Lock()
	fn := teardown
	teardownMu.Unlock()
	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler: terminal first, then the report, then exit
func HandleCrash(r any) {
	if r == nil {
		return
	}

	runTeardown()
	ReportCrash(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// ReportCrash writes the panic value and stack trace
func ReportCrash(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\n\x1b[31mSPACE DOZER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
