// ABOUTME: Core Elm Architecture types: Msg, Cmd, Sub, Model, and View
// ABOUTME: The Program in program.go drives these against a Terminal

package snaptui

import "github.com/andrew-roci/snaptui/key"

// Msg is any value delivered to a model's Update. Built-in messages are
// KeyMsg, MouseMsg, PasteMsg, FocusMsg, WindowSizeMsg, and QuitMsg;
// applications define their own for command results.
type Msg interface{}

// Cmd is a side effect run on its own goroutine. The returned message,
// if any, is fed back into Update. Commands run to completion exactly
// once and are never cancelled.
type Cmd func() Msg

// Input event messages, decoded by the key package.
type (
	KeyMsg   = key.KeyMsg
	MouseMsg = key.MouseMsg
	PasteMsg = key.PasteMsg
	FocusMsg = key.FocusMsg
)

// WindowSizeMsg is sent when the terminal is resized, and once at startup
// with the initial dimensions.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// QuitMsg stops the program. It is consumed by the event loop and never
// reaches the model.
type QuitMsg struct{}

// CursorBlinkMsg toggles cursor visibility in text-entry components. The
// tag identifies the blink generation so stale timers are ignored.
type CursorBlinkMsg struct {
	Tag int
}

// Quit is a command that stops the program.
func Quit() Msg {
	return QuitMsg{}
}

// batchMsg carries the messages of a batched command as one unit.
type batchMsg []Msg

// Batch combines commands into one. The commands run sequentially on a
// single goroutine; their messages are enqueued together, in order,
// relative to other concurrently completing commands.
func Batch(cmds ...Cmd) Cmd {
	filtered := cmds[:0]
	for _, c := range cmds {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return func() Msg {
		var msgs batchMsg
		for _, cmd := range filtered {
			if msg := cmd(); msg != nil {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) == 0 {
			return nil
		}
		return msgs
	}
}

// Sub declares a background listener owned by the runtime. start receives
// a send callback for emitting messages and returns a stop function; after
// stop returns, no new emits may begin. At most one subscription per key
// is active at a time.
type Sub struct {
	Key   string
	Start func(send func(Msg)) (stop func())
}

// Model is the application state driven by a Program.
//
// Init runs once at startup and may return an initial command. Update
// handles one message and returns the next model plus an optional
// command. View renders the current state. The runtime is the sole owner
// of the model; Update may mutate in place and return the receiver, or
// return a fresh value.
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	View() string
}

// Subscriber is implemented by models that declare subscriptions. The
// runtime reconciles the declared set against running subscriptions after
// every update.
type Subscriber interface {
	Subscriptions() []Sub
}

// ViewModel is implemented by models that need per-frame terminal state
// beyond text: a hardware cursor, the alt-screen flag, or a window title.
// When implemented, ViewState is used instead of View's plain string.
type ViewModel interface {
	ViewState() View
}

// Cursor is a hardware cursor position within the rendered content,
// 0-based from the top-left.
type Cursor struct {
	Row int
	Col int
}

// View is the declarative render output of one frame.
type View struct {
	// Content is the text to draw.
	Content string
	// Cursor places and shows the hardware cursor; nil keeps it hidden.
	Cursor *Cursor
	// AltScreen selects the alternate screen buffer. Toggling it between
	// frames switches buffers live.
	AltScreen bool
	// Title sets the terminal window title; empty leaves it unchanged.
	Title string
}
