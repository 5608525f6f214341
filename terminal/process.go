// ABOUTME: ProcessTerminal implements Terminal over real file descriptors
// ABOUTME: using golang.org/x/term; signal handling is platform-specific

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a pair of files (stdin and
// stdout by default) and x/term for raw-mode state.
type ProcessTerminal struct {
	in  *os.File
	out *os.File

	mu        sync.Mutex
	oldState  *term.State
	resizeFn  func(width, height int)
	suspendFn func()
	resumeFn  func()
}

// NewProcessTerminal returns a ProcessTerminal on the process's stdin and
// stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewProcessTerminalFiles(os.Stdin, os.Stdout)
}

// NewProcessTerminalFiles returns a ProcessTerminal on explicit files,
// typically the two ends of a pty in tests.
func NewProcessTerminalFiles(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
// Platform-specific signal handling is set up by startResizeListener.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.startResizeListener()
}

// OnSuspendResume registers callbacks around cooperative suspend and
// installs the platform stop/continue signal handlers.
func (t *ProcessTerminal) OnSuspendResume(onSuspend, onResume func()) {
	t.mu.Lock()
	t.suspendFn = onSuspend
	t.resumeFn = onResume
	t.mu.Unlock()

	t.startSuspendListener()
}
