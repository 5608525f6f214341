// ABOUTME: Contracts for widgets built on top of the runtime
// ABOUTME: Components mirror the Model update/view shape without Init

package snaptui

// Component is the shape widgets expose: the same update/view pair as
// Model, minus lifecycle. Parent models route messages to their
// components and stitch the views together.
type Component interface {
	Update(msg Msg) (Component, Cmd)
	View() string
}

// Focusable is implemented by components that react to keyboard focus,
// such as text inputs toggling their cursor.
type Focusable interface {
	Focus()
	Blur()
}

// CursorPositioner is implemented by components that host the hardware
// cursor. Applications use the reported position, offset by the
// component's placement, to fill View.Cursor.
type CursorPositioner interface {
	// CursorPosition returns the cursor's row and column within the
	// component's own view, or ok=false when the cursor is hidden.
	CursorPosition() (row, col int, ok bool)
}
