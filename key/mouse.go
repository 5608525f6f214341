// ABOUTME: SGR extended mouse protocol decoding (CSI < Cb ; Px ; Py M/m)
// ABOUTME: Malformed reports decode to no event rather than an error

package key

import (
	"strconv"
	"strings"
)

// MouseButton identifies the button involved in a mouse event.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone
)

// MouseAction is the kind of mouse event.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseWheelUp
	MouseWheelDown
)

// MouseMsg is a decoded mouse event with 0-based cell coordinates.
type MouseMsg struct {
	X      int
	Y      int
	Button MouseButton
	Action MouseAction
}

// SGR mouse report layout in the Cb parameter.
const (
	mouseMotionBit = 32
	mouseWheelBit  = 64
)

// parseSGRMouse decodes an SGR mouse report of the form
// ESC [ < Cb ; Px ; Py (M|m). It returns false for anything malformed
// or truncated.
func parseSGRMouse(seq []byte) (MouseMsg, bool) {
	s := string(seq)
	if !strings.HasPrefix(s, "\x1b[<") || len(s) < 4 {
		return MouseMsg{}, false
	}

	final := s[len(s)-1]
	if final != 'M' && final != 'm' {
		return MouseMsg{}, false
	}

	parts := strings.Split(s[3:len(s)-1], ";")
	if len(parts) != 3 {
		return MouseMsg{}, false
	}
	cb, err1 := strconv.Atoi(parts[0])
	px, err2 := strconv.Atoi(parts[1])
	py, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return MouseMsg{}, false
	}

	m := MouseMsg{X: px - 1, Y: py - 1}

	switch {
	case cb&mouseWheelBit != 0:
		m.Button = MouseNone
		if cb&1 != 0 {
			m.Action = MouseWheelDown
		} else {
			m.Action = MouseWheelUp
		}
	default:
		switch cb & 3 {
		case 0:
			m.Button = MouseLeft
		case 1:
			m.Button = MouseMiddle
		case 2:
			m.Button = MouseRight
		default:
			m.Button = MouseNone
		}
		switch {
		case final == 'm':
			m.Action = MouseRelease
		case cb&mouseMotionBit != 0:
			m.Action = MouseMotion
		default:
			m.Action = MousePress
		}
	}

	return m, true
}
