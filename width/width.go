// ABOUTME: Visible-width measurement and padding for styled terminal text
// ABOUTME: Grapheme-aware via uniseg; cell widths via go-runewidth

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies. Escape
// sequences count zero, combining marks count zero, East Asian wide and
// fullwidth characters count two, everything else counts one.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}

	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster)
	}
	return w
}

// plainASCII reports whether s is printable ASCII with no escape sequences.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// clusterWidth returns the column width of one grapheme cluster. The base
// rune decides the width; trailing combining marks add nothing.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// PadRight appends spaces to s until its visible width reaches w.
// Strings already at least w columns wide are returned unchanged.
func PadRight(s string, w int) string {
	vw := VisibleWidth(s)
	if vw >= w {
		return s
	}
	return s + strings.Repeat(" ", w-vw)
}
