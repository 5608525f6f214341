// ABOUTME: Windows stubs for ProcessTerminal signal handling.
// ABOUTME: Windows has neither SIGWINCH nor job-control stop signals.

//go:build windows

package terminal

import "errors"

// startResizeListener is a no-op on Windows.
// Windows terminal resize detection requires SetConsoleMode and
// ReadConsoleInput, which is left for future implementation.
func (t *ProcessTerminal) startResizeListener() {
	// No-op: Windows resize detection is not yet implemented.
}

// startSuspendListener is a no-op on Windows; there is no SIGTSTP.
func (t *ProcessTerminal) startSuspendListener() {}

// Suspend is unsupported on Windows.
func (t *ProcessTerminal) Suspend() error {
	return errors.New("suspend is not supported on windows")
}
