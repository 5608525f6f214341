// ABOUTME: Block composition helpers: join blocks side by side or stacked,
// ABOUTME: and place a block on a fixed-size canvas with fractional alignment

package layout

import (
	"strings"

	"github.com/andrew-roci/snaptui/width"
)

// Fractional alignment positions. Horizontal joins read these as vertical
// alignment, vertical joins and Place read them as horizontal.
const (
	Left   = 0.0
	Top    = 0.0
	Center = 0.5
	Right  = 1.0
	Bottom = 1.0
)

// JoinHorizontal merges multi-line blocks side by side. Shorter blocks are
// padded with blank rows, distributed by align (0 top, 0.5 center, 1
// bottom), and every line of a block is padded to that block's widest line
// so columns stay straight.
func JoinHorizontal(align float64, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) == 1 {
		return blocks[0]
	}

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	maxHeight := 0
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		split[i] = lines
		for _, l := range lines {
			if w := width.VisibleWidth(l); w > widths[i] {
				widths[i] = w
			}
		}
		if len(lines) > maxHeight {
			maxHeight = len(lines)
		}
	}

	for i, lines := range split {
		if gap := maxHeight - len(lines); gap > 0 {
			topPad := int(float64(gap) * align)
			blank := strings.Repeat(" ", widths[i])
			padded := make([]string, 0, maxHeight)
			for j := 0; j < topPad; j++ {
				padded = append(padded, blank)
			}
			padded = append(padded, lines...)
			for j := 0; j < gap-topPad; j++ {
				padded = append(padded, blank)
			}
			lines = padded
		}
		for j, l := range lines {
			lines[j] = width.PadRight(l, widths[i])
		}
		split[i] = lines
	}

	var b strings.Builder
	for row := 0; row < maxHeight; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, lines := range split {
			b.WriteString(lines[row])
		}
	}
	return b.String()
}

// JoinVertical stacks blocks, aligning narrower lines against the widest
// line of the whole stack (0 left, 0.5 center, 1 right). Lines are not
// right-padded; trailing whitespace stays off screen.
func JoinVertical(align float64, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) == 1 {
		return blocks[0]
	}

	var lines []string
	for _, block := range blocks {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	maxWidth := 0
	for _, l := range lines {
		if w := width.VisibleWidth(l); w > maxWidth {
			maxWidth = w
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		gap := maxWidth - width.VisibleWidth(line)
		if gap <= 0 || align == 0 {
			out[i] = line
			continue
		}
		out[i] = strings.Repeat(" ", int(float64(gap)*align)) + line
	}
	return strings.Join(out, "\n")
}

// Place renders content onto a w-by-h canvas. Lines wider than the canvas
// are truncated; extra rows beyond the canvas height are dropped.
func Place(w, h int, hAlign, vAlign float64, content string) string {
	lines := strings.Split(content, "\n")

	aligned := make([]string, len(lines))
	for i, line := range lines {
		gap := w - width.VisibleWidth(line)
		if gap <= 0 {
			aligned[i] = width.Truncate(line, w)
			continue
		}
		leftPad := int(float64(gap) * hAlign)
		aligned[i] = strings.Repeat(" ", leftPad) + line + strings.Repeat(" ", gap-leftPad)
	}

	switch {
	case len(aligned) < h:
		gap := h - len(aligned)
		topPad := int(float64(gap) * vAlign)
		blank := strings.Repeat(" ", w)
		out := make([]string, 0, h)
		for i := 0; i < topPad; i++ {
			out = append(out, blank)
		}
		out = append(out, aligned...)
		for i := 0; i < gap-topPad; i++ {
			out = append(out, blank)
		}
		aligned = out
	case len(aligned) > h:
		aligned = aligned[:h]
	}

	return strings.Join(aligned, "\n")
}
