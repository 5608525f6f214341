// ABOUTME: Input event types and lookup tables for terminal keyboard decoding
// ABOUTME: Symbolic key names plus control-byte and escape-sequence maps

package key

import "fmt"

// Event is one decoded input event: a KeyMsg, MouseMsg, PasteMsg, or FocusMsg.
type Event interface{}

// KeyMsg is a key press. Key is the symbolic name ("enter", "ctrl+c", "up",
// "a", "alt+x"); Char carries the literal character for printable keys.
type KeyMsg struct {
	Key  string
	Char string
}

// String returns the symbolic key name.
func (k KeyMsg) String() string { return k.Key }

// PasteMsg marks the begin or end of a bracketed paste.
type PasteMsg struct {
	Begin bool
}

// FocusMsg reports terminal focus gained or lost.
type FocusMsg struct {
	Gained bool
}

// Named keys.
const (
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyBackspace = "backspace"
	KeyEsc       = "esc"
	KeySpace     = "space"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPgUp      = "pgup"
	KeyPgDown    = "pgdown"
	KeyDelete    = "delete"
	KeyInsert    = "insert"
	KeyShiftTab  = "shift+tab"

	// KeyCtrlZ is reserved by the runtime for cooperative suspend.
	KeyCtrlZ = "ctrl+z"
)

// sequences maps complete escape sequences to key events.
var sequences = map[string]KeyMsg{
	// Arrows (CSI and SS3 application mode)
	"\x1b[A": {Key: KeyUp},
	"\x1b[B": {Key: KeyDown},
	"\x1b[C": {Key: KeyRight},
	"\x1b[D": {Key: KeyLeft},
	"\x1bOA": {Key: KeyUp},
	"\x1bOB": {Key: KeyDown},
	"\x1bOC": {Key: KeyRight},
	"\x1bOD": {Key: KeyLeft},

	// Home/End
	"\x1b[H":  {Key: KeyHome},
	"\x1b[F":  {Key: KeyEnd},
	"\x1bOH":  {Key: KeyHome},
	"\x1bOF":  {Key: KeyEnd},
	"\x1b[1~": {Key: KeyHome},
	"\x1b[4~": {Key: KeyEnd},

	// Insert/Delete/Page
	"\x1b[2~": {Key: KeyInsert},
	"\x1b[3~": {Key: KeyDelete},
	"\x1b[5~": {Key: KeyPgUp},
	"\x1b[6~": {Key: KeyPgDown},

	// Function keys
	"\x1bOP":   {Key: "f1"},
	"\x1bOQ":   {Key: "f2"},
	"\x1bOR":   {Key: "f3"},
	"\x1bOS":   {Key: "f4"},
	"\x1b[15~": {Key: "f5"},
	"\x1b[17~": {Key: "f6"},
	"\x1b[18~": {Key: "f7"},
	"\x1b[19~": {Key: "f8"},
	"\x1b[20~": {Key: "f9"},
	"\x1b[21~": {Key: "f10"},
	"\x1b[23~": {Key: "f11"},
	"\x1b[24~": {Key: "f12"},

	"\x1b[Z": {Key: KeyShiftTab},

	// Modified arrows
	"\x1b[1;5A": {Key: "ctrl+up"},
	"\x1b[1;5B": {Key: "ctrl+down"},
	"\x1b[1;5C": {Key: "ctrl+right"},
	"\x1b[1;5D": {Key: "ctrl+left"},
	"\x1b[1;2A": {Key: "shift+up"},
	"\x1b[1;2B": {Key: "shift+down"},
	"\x1b[1;2C": {Key: "shift+right"},
	"\x1b[1;2D": {Key: "shift+left"},
	"\x1b[1;3A": {Key: "alt+up"},
	"\x1b[1;3B": {Key: "alt+down"},
	"\x1b[1;3C": {Key: "alt+right"},
	"\x1b[1;3D": {Key: "alt+left"},
}

// ctrlNames maps single control bytes to symbolic names. Some terminals
// send 0x08 for backspace.
var ctrlNames = map[byte]string{
	0x00: "ctrl+space",
	0x01: "ctrl+a",
	0x02: "ctrl+b",
	0x03: "ctrl+c",
	0x04: "ctrl+d",
	0x05: "ctrl+e",
	0x06: "ctrl+f",
	0x07: "ctrl+g",
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0a: "ctrl+j",
	0x0b: "ctrl+k",
	0x0c: "ctrl+l",
	0x0d: KeyEnter,
	0x0e: "ctrl+n",
	0x0f: "ctrl+o",
	0x10: "ctrl+p",
	0x11: "ctrl+q",
	0x12: "ctrl+r",
	0x13: "ctrl+s",
	0x14: "ctrl+t",
	0x15: "ctrl+u",
	0x16: "ctrl+v",
	0x17: "ctrl+w",
	0x18: "ctrl+x",
	0x19: "ctrl+y",
	0x1a: KeyCtrlZ,
	0x7f: KeyBackspace,
}

// unknownKey builds the event emitted for undecodable input, carrying the
// raw bytes in the name.
func unknownKey(raw []byte) KeyMsg {
	return KeyMsg{Key: fmt.Sprintf("unknown(%q)", raw)}
}
