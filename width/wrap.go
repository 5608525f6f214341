// ABOUTME: ANSI-aware greedy word wrapping with open-style carry across breaks
// ABOUTME: Explicit line breaks are preserved; overlong words are hard-broken

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WordWrap wraps s to at most w visible columns per line. Words are packed
// greedily; a word wider than w is hard-broken at the column boundary.
// Styling sequences still open at a forced break are reopened on the
// continuation line. Existing newlines are preserved.
func WordWrap(s string, w int) string {
	if w <= 0 {
		return s
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if VisibleWidth(line) <= w {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, w)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single newline-free line that is known to overflow w.
func wrapLine(line string, w int) []string {
	var wrapped []string
	var sgr ActiveSGR
	cur := ""
	curW := 0

	for _, word := range splitWords(line) {
		ww := VisibleWidth(word)
		switch {
		case curW == 0:
			if ww > w {
				cur, curW = breakWordInto(&wrapped, &sgr, cur, word, w)
			} else {
				cur += word
				curW = ww
			}
		case curW+ww <= w:
			cur += word
			curW += ww
		default:
			wrapped = append(wrapped, cur)
			cur = sgr.String()
			if ww > w {
				cur, curW = breakWordInto(&wrapped, &sgr, cur, word, w)
			} else {
				trimmed := strings.TrimLeft(word, " ")
				cur += trimmed
				curW = VisibleWidth(trimmed)
			}
		}
		trackStyles(&sgr, word)
	}

	if cur != "" {
		wrapped = append(wrapped, cur)
	}
	return wrapped
}

// breakWordInto hard-breaks an overlong word, flushing completed pieces to
// wrapped. Returns the open line and its width. A trailing whitespace-only
// fragment is dropped rather than carried to the next line.
func breakWordInto(wrapped *[]string, sgr *ActiveSGR, cur, word string, w int) (string, int) {
	pieces := hardBreak(word, w)
	if len(pieces) == 0 {
		return cur, 0
	}
	for j, piece := range pieces {
		if j > 0 {
			*wrapped = append(*wrapped, cur)
			cur = sgr.String()
		}
		cur += piece
	}
	last := pieces[len(pieces)-1]
	if strings.TrimSpace(StripANSI(last)) == "" {
		return sgr.String(), 0
	}
	return cur, VisibleWidth(last)
}

// trackStyles feeds every escape sequence in word into the SGR tracker.
func trackStyles(sgr *ActiveSGR, word string) {
	for i := 0; i < len(word); {
		if word[i] == '\x1b' {
			end := seqEnd(word, i)
			sgr.Apply(word[i:end])
			i = end
			continue
		}
		i++
	}
}

// splitWords tokenizes a line into words with their trailing spaces and any
// embedded escape sequences attached.
func splitWords(s string) []string {
	var tokens []string
	var cur strings.Builder

	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := seqEnd(s, i)
			cur.WriteString(s[i:end])
			i = end
			continue
		}
		if s[i] == ' ' {
			cur.WriteByte(' ')
			if i+1 < len(s) {
				// Flush when the run of trailing spaces ends, looking past
				// any escape sequence that follows the space.
				j := i + 1
				if s[j] == '\x1b' {
					j = seqEnd(s, j)
				}
				next := byte(' ')
				if j < len(s) {
					next = s[j]
				}
				if next != ' ' {
					tokens = append(tokens, cur.String())
					cur.Reset()
				}
			}
			i++
			continue
		}
		cur.WriteByte(s[i])
		i++
	}

	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// hardBreak splits a single word into pieces of at most w columns each.
func hardBreak(word string, w int) []string {
	var pieces []string
	var cur strings.Builder
	curW := 0

	for i := 0; i < len(word); {
		if word[i] == '\x1b' {
			end := seqEnd(word, i)
			cur.WriteString(word[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(word[i:], -1)
		cw := clusterWidth(cluster)
		if curW+cw > w && cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(cluster)
		curW += cw
		i = len(word) - len(rest)
	}

	if cur.Len() > 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}
