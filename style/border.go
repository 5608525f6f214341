// ABOUTME: Border glyph sets for styled blocks
// ABOUTME: Rounded, normal, double, thick, and hidden variants

package style

// Border is a set of box-drawing glyphs for the four corners and two edges.
type Border struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	NormalBorder  = Border{"┌", "┐", "└", "┘", "─", "│"}
	RoundedBorder = Border{"╭", "╮", "╰", "╯", "─", "│"}
	DoubleBorder  = Border{"╔", "╗", "╚", "╝", "═", "║"}
	ThickBorder   = Border{"┏", "┓", "┗", "┛", "━", "┃"}
	HiddenBorder  = Border{" ", " ", " ", " ", " ", " "}
)
