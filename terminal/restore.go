// ABOUTME: Panic recovery helpers that restore the terminal before the
// ABOUTME: process dies, so a crash never leaves the user's shell raw

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of main (or any goroutine
// that owns the terminal). On panic it restores the cursor, exits raw
// mode via the provided Terminal, prints the panic value and stack trace,
// then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: show cursor and exit raw mode.
	_, _ = os.Stdout.Write([]byte(ShowCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: show cursor and exit raw mode.
	_, _ = os.Stdout.Write([]byte(ShowCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
