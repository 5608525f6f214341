// ABOUTME: Immutable chainable style descriptor for terminal text blocks
// ABOUTME: Every setter returns a modified copy; Render applies the full pipeline

package style

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// SGR codes for the boolean decorations.
const (
	reset       = "\x1b[0m"
	boldCode    = "\x1b[1m"
	dimCode     = "\x1b[2m"
	italicCode  = "\x1b[3m"
	underCode   = "\x1b[4m"
	reverseCode = "\x1b[7m"
	strikeCode  = "\x1b[9m"
)

// Box side indices for padding and margin.
const (
	top = iota
	right
	bottom
	left
)

// Style is an immutable text style. The zero value renders content
// unchanged; use New and the chainable setters to build one up. Setters
// never mutate the receiver.
type Style struct {
	fg string
	bg string

	bold          bool
	dim           bool
	italic        bool
	underline     bool
	reverse       bool
	strikethrough bool

	padding [4]int
	margin  [4]int

	width     int
	maxWidth  int
	height    int
	maxHeight int

	border      *Border
	borderFg    string
	borderSides [4]bool

	align float64

	err error
}

// New returns an empty style.
func New() Style {
	return Style{}
}

// Err reports the first configuration error recorded on the style, such as
// an invalid color or a bad padding/margin shorthand.
func (s Style) Err() error {
	return s.err
}

func (s Style) fail(err error) Style {
	if s.err == nil {
		s.err = err
	}
	return s
}

// Bold sets the bold decoration.
func (s Style) Bold(v bool) Style { s.bold = v; return s }

// Dim sets the faint decoration.
func (s Style) Dim(v bool) Style { s.dim = v; return s }

// Italic sets the italic decoration.
func (s Style) Italic(v bool) Style { s.italic = v; return s }

// Underline sets the underline decoration.
func (s Style) Underline(v bool) Style { s.underline = v; return s }

// Reverse sets the reverse-video decoration.
func (s Style) Reverse(v bool) Style { s.reverse = v; return s }

// Strikethrough sets the strikethrough decoration.
func (s Style) Strikethrough(v bool) Style { s.strikethrough = v; return s }

// Foreground sets the 24-bit foreground color from a hex string ("#7D56F4").
func (s Style) Foreground(hex string) Style {
	if _, err := parseHex(hex); err != nil {
		return s.fail(err)
	}
	s.fg = hex
	return s
}

// Background sets the 24-bit background color from a hex string.
func (s Style) Background(hex string) Style {
	if _, err := parseHex(hex); err != nil {
		return s.fail(err)
	}
	s.bg = hex
	return s
}

// Width fixes the total block width; content wraps to fit.
func (s Style) Width(n int) Style { s.width = n; return s }

// MaxWidth caps the block width with a final hard truncation.
func (s Style) MaxWidth(n int) Style { s.maxWidth = n; return s }

// Height fixes the block height.
func (s Style) Height(n int) Style { s.height = n; return s }

// MaxHeight caps the number of rendered lines.
func (s Style) MaxHeight(n int) Style { s.maxHeight = n; return s }

// Align sets horizontal alignment: 0 left, 0.5 center, 1 right.
func (s Style) Align(pos float64) Style { s.align = pos; return s }

// Padding sets padding with CSS shorthand semantics: one value for all
// sides, two for vertical/horizontal, four for top/right/bottom/left.
// Any other count is a configuration error and leaves padding unchanged.
func (s Style) Padding(vals ...int) Style {
	box, err := expandShorthand("padding", vals)
	if err != nil {
		return s.fail(err)
	}
	s.padding = box
	return s
}

// PaddingTop sets only the top padding.
func (s Style) PaddingTop(n int) Style { s.padding[top] = n; return s }

// PaddingRight sets only the right padding.
func (s Style) PaddingRight(n int) Style { s.padding[right] = n; return s }

// PaddingBottom sets only the bottom padding.
func (s Style) PaddingBottom(n int) Style { s.padding[bottom] = n; return s }

// PaddingLeft sets only the left padding.
func (s Style) PaddingLeft(n int) Style { s.padding[left] = n; return s }

// Margin sets margin with the same shorthand semantics as Padding.
func (s Style) Margin(vals ...int) Style {
	box, err := expandShorthand("margin", vals)
	if err != nil {
		return s.fail(err)
	}
	s.margin = box
	return s
}

// Border sets the border glyph set. With no side arguments all four sides
// are drawn; with exactly four booleans the sides are top, right, bottom,
// left.
func (s Style) Border(b Border, sides ...bool) Style {
	s.border = &b
	switch len(sides) {
	case 0:
		s.borderSides = [4]bool{true, true, true, true}
	case 4:
		copy(s.borderSides[:], sides)
	default:
		return s.fail(fmt.Errorf("border: want 0 or 4 side arguments, got %d", len(sides)))
	}
	return s
}

// BorderForeground colors the border independently of the body.
func (s Style) BorderForeground(hex string) Style {
	if _, err := parseHex(hex); err != nil {
		return s.fail(err)
	}
	s.borderFg = hex
	return s
}

// expandShorthand maps 1, 2, or 4 values onto the four box sides.
func expandShorthand(what string, vals []int) ([4]int, error) {
	switch len(vals) {
	case 1:
		return [4]int{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return [4]int{vals[0], vals[1], vals[0], vals[1]}, nil
	case 4:
		return [4]int{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return [4]int{}, fmt.Errorf("%s: want 1, 2, or 4 values, got %d", what, len(vals))
}

// parseHex parses "#RRGGBB" (with or without the hash) into RGB bytes.
func parseHex(hex string) ([3]uint8, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]uint8{}, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return [3]uint8{r, g, b}, nil
}

// fgCode returns the 24-bit foreground SGR for a hex color, or "".
func fgCode(hex string) string {
	if hex == "" {
		return ""
	}
	rgb, err := parseHex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
}

// bgCode returns the 24-bit background SGR for a hex color, or "".
func bgCode(hex string) string {
	if hex == "" {
		return ""
	}
	rgb, err := parseHex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", rgb[0], rgb[1], rgb[2])
}
