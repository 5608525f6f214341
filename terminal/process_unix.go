// ABOUTME: Unix signal plumbing for ProcessTerminal: SIGWINCH resize events
// ABOUTME: and SIGTSTP/SIGCONT cooperative suspend and resume

//go:build unix

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// startResizeListener sets up a SIGWINCH handler that calls the resize
// callback with the new terminal dimensions.
func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)

	go func() {
		for range sigCh {
			t.mu.Lock()
			fn := t.resizeFn
			t.mu.Unlock()

			if fn == nil {
				continue
			}

			w, h, err := t.Size()
			if err != nil {
				continue
			}
			fn(w, h)
		}
	}()
}

// startSuspendListener wires SIGTSTP and SIGCONT: on stop, run the
// suspend callback, hand the signal back to the default action, and
// deliver it again so the process actually stops; on continue, re-trap
// SIGTSTP and run the resume callback.
func (t *ProcessTerminal) startSuspendListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGTSTP, unix.SIGCONT)

	go func() {
		for sig := range sigCh {
			t.mu.Lock()
			suspendFn := t.suspendFn
			resumeFn := t.resumeFn
			t.mu.Unlock()

			switch sig {
			case unix.SIGTSTP:
				if suspendFn != nil {
					suspendFn()
				}
				signal.Reset(unix.SIGTSTP)
				_ = unix.Kill(os.Getpid(), unix.SIGTSTP)
			case unix.SIGCONT:
				signal.Notify(sigCh, unix.SIGTSTP)
				if resumeFn != nil {
					resumeFn()
				}
			}
		}
	}()
}

// Suspend yields the process to the OS. The SIGTSTP handler runs the
// suspend callback before the process stops.
func (t *ProcessTerminal) Suspend() error {
	return unix.Kill(os.Getpid(), unix.SIGTSTP)
}
