// ABOUTME: ANSI-preserving truncation to a column budget
// ABOUTME: Wide characters that would straddle the boundary are omitted, never split

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate cuts s down to at most w visible columns. Escape sequences are
// copied through verbatim without counting. A width-2 character that would
// exceed the budget is dropped entirely. Truncate is idempotent.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if plainASCII(s) && len(s) <= w {
		return s
	}

	var b strings.Builder
	col := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := seqEnd(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if col+cw > w {
			break
		}
		b.WriteString(cluster)
		col += cw
		i = len(s) - len(rest)
	}
	return b.String()
}
