// ABOUTME: Defines the Terminal interface plus the ANSI escape vocabulary the
// ABOUTME: runtime emits; implementations target a real TTY or a test fake

package terminal

import "fmt"

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, output writing, and resize and suspend/resume notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))

	// OnSuspendResume registers callbacks around cooperative suspend.
	// onSuspend runs before the process yields to the OS, onResume after
	// it is continued.
	OnSuspendResume(onSuspend, onResume func())

	// Suspend yields the process to the OS after running the registered
	// suspend callback.
	Suspend() error
}

// Escape sequences written by the renderer and runtime.
const (
	AltScreenOn  = "\x1b[?1049h"
	AltScreenOff = "\x1b[?1049l"

	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	CursorHome = "\x1b[H"

	EraseLineRight    = "\x1b[K"
	EraseScreenBelow  = "\x1b[J"
	EraseEntireScreen = "\x1b[2J"

	// Synchronized output, DEC private mode 2026.
	SyncBegin = "\x1b[?2026h"
	SyncEnd   = "\x1b[?2026l"

	EnableMouse  = "\x1b[?1000h\x1b[?1006h"
	DisableMouse = "\x1b[?1000l\x1b[?1006l"

	EnableBracketedPaste  = "\x1b[?2004h"
	DisableBracketedPaste = "\x1b[?2004l"

	Reset = "\x1b[0m"
)

// CursorUp moves the cursor up n rows.
func CursorUp(n int) string { return fmt.Sprintf("\x1b[%dA", n) }

// CursorDown moves the cursor down n rows.
func CursorDown(n int) string { return fmt.Sprintf("\x1b[%dB", n) }

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string { return fmt.Sprintf("\x1b[%dC", n) }

// CursorBack moves the cursor left n columns.
func CursorBack(n int) string { return fmt.Sprintf("\x1b[%dD", n) }

// CursorTo moves the cursor to row, col (1-based).
func CursorTo(row, col int) string { return fmt.Sprintf("\x1b[%d;%dH", row, col) }

// SetWindowTitle emits OSC 2 to retitle the terminal window.
func SetWindowTitle(title string) string { return fmt.Sprintf("\x1b]2;%s\x07", title) }

// Foreground returns the 24-bit foreground SGR for the given RGB values.
func Foreground(r, g, b int) string { return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b) }

// Background returns the 24-bit background SGR for the given RGB values.
func Background(r, g, b int) string { return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b) }
