// ABOUTME: ANSI escape sequence scanning, stripping, and SGR state tracking
// ABOUTME: Escape sequences contribute zero columns everywhere in this package

package width

import "strings"

// hasESC is a fast check for the presence of ESC (0x1B).
func hasESC(s string) bool {
	return strings.IndexByte(s, 0x1b) >= 0
}

// seqEnd returns the index of the first byte after the escape sequence
// starting at s[i]. If s[i] is not ESC the index is returned unchanged.
func seqEnd(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters and intermediates, then a final byte 0x40-0x7E.
		i++
		for i < len(s) {
			if b := s[i]; b >= 0x40 && b <= 0x7e {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(', ')':
		// Charset designation: one more byte.
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		// Two-byte ESC sequence.
		return i + 1
	}
}

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !hasESC(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = seqEnd(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

const sgrReset = "\x1b[0m"

// ActiveSGR accumulates styling sequences seen on a line so that still-open
// styling can be reopened after a forced wrap break. A full reset clears the
// tracked state; partial overrides by later codes are not modeled.
type ActiveSGR struct {
	seqs []string
}

// Apply records one escape sequence.
func (a *ActiveSGR) Apply(seq string) {
	if seq == sgrReset || seq == "\x1b[m" {
		a.seqs = a.seqs[:0]
		return
	}
	a.seqs = append(a.seqs, seq)
}

// String returns the concatenation of all open sequences, or "".
func (a *ActiveSGR) String() string {
	if len(a.seqs) == 0 {
		return ""
	}
	return strings.Join(a.seqs, "")
}
