// ABOUTME: Render pipeline for Style: wrap, pad, size, align, color, border, margin
// ABOUTME: Stage order matters; decorations wrap the sized block so backgrounds fill

package style

import (
	"strings"

	"github.com/andrew-roci/snaptui/width"
)

// Render applies the style to content and returns the final ANSI string.
// Stages run in a fixed order: wrap, padding, width, height, alignment,
// line normalization, text attributes, max-height, border, margin, and a
// final max-width truncation.
func (s Style) Render(content string) string {
	lines := strings.Split(content, "\n")

	lines = s.wrapLines(lines)
	lines = s.padLines(lines)
	lines = s.applyWidth(lines)
	lines = s.applyHeight(lines)
	lines = s.applyAlign(lines)

	// Normalize line widths so the background fills a rectangle.
	if len(lines) > 1 {
		maxW := maxVisible(lines)
		for i, l := range lines {
			lines[i] = width.PadRight(l, maxW)
		}
	}

	if prefix := s.prefix(); prefix != "" {
		for i, l := range lines {
			lines[i] = prefix + l + reset
		}
	}

	if s.maxHeight > 0 && len(lines) > s.maxHeight {
		lines = lines[:s.maxHeight]
	}

	lines = s.applyBorder(lines)
	lines = s.applyMargin(lines)

	if s.maxWidth > 0 {
		for i, l := range lines {
			lines[i] = width.Truncate(l, s.maxWidth)
		}
	}

	return strings.Join(lines, "\n")
}

func maxVisible(lines []string) int {
	max := 0
	for _, l := range lines {
		if w := width.VisibleWidth(l); w > max {
			max = w
		}
	}
	return max
}

// prefix assembles the SGR sequence for the enabled text attributes.
func (s Style) prefix() string {
	var b strings.Builder
	if s.bold {
		b.WriteString(boldCode)
	}
	if s.dim {
		b.WriteString(dimCode)
	}
	if s.italic {
		b.WriteString(italicCode)
	}
	if s.underline {
		b.WriteString(underCode)
	}
	if s.reverse {
		b.WriteString(reverseCode)
	}
	if s.strikethrough {
		b.WriteString(strikeCode)
	}
	b.WriteString(fgCode(s.fg))
	b.WriteString(bgCode(s.bg))
	return b.String()
}

// wrapLines wraps each input line to the inner content width: the fixed
// width minus horizontal padding and border columns.
func (s Style) wrapLines(lines []string) []string {
	if s.width <= 0 {
		return lines
	}
	contentW := s.width - s.padding[left] - s.padding[right] - s.borderCols()
	if contentW <= 0 {
		return lines
	}
	var out []string
	for _, line := range lines {
		out = append(out, strings.Split(width.WordWrap(line, contentW), "\n")...)
	}
	return out
}

// borderCols counts the columns consumed by vertical border edges.
func (s Style) borderCols() int {
	if s.border == nil {
		return 0
	}
	n := 0
	if s.borderSides[left] {
		n++
	}
	if s.borderSides[right] {
		n++
	}
	return n
}

// borderRows counts the rows consumed by horizontal border edges.
func (s Style) borderRows() int {
	if s.border == nil {
		return 0
	}
	n := 0
	if s.borderSides[top] {
		n++
	}
	if s.borderSides[bottom] {
		n++
	}
	return n
}

// padLines inserts padding spaces and blank padding rows. Padding is plain
// whitespace so the attribute prefix applied later colors it too.
func (s Style) padLines(lines []string) []string {
	out := lines
	if s.padding[left] > 0 || s.padding[right] > 0 {
		lp := strings.Repeat(" ", s.padding[left])
		rp := strings.Repeat(" ", s.padding[right])
		padded := make([]string, len(out))
		for i, l := range out {
			padded[i] = lp + l + rp
		}
		out = padded
	}
	if s.padding[top] > 0 {
		blank := strings.Repeat(" ", maxVisible(out))
		rows := make([]string, s.padding[top], s.padding[top]+len(out))
		for i := range rows[:s.padding[top]] {
			rows[i] = blank
		}
		out = append(rows, out...)
	}
	if s.padding[bottom] > 0 {
		blank := strings.Repeat(" ", maxVisible(out))
		for i := 0; i < s.padding[bottom]; i++ {
			out = append(out, blank)
		}
	}
	return out
}

// applyWidth pads or truncates every line to the inner width. Wrapping has
// already run, so truncation here only catches unbreakable overflow.
func (s Style) applyWidth(lines []string) []string {
	if s.width <= 0 {
		return lines
	}
	target := s.width - s.borderCols()
	if target < 0 {
		target = 0
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		switch vw := width.VisibleWidth(line); {
		case vw < target:
			out[i] = width.PadRight(line, target)
		case vw > target:
			out[i] = width.Truncate(line, target)
		default:
			out[i] = line
		}
	}
	return out
}

// applyHeight pads with blank rows or trims to the inner height.
func (s Style) applyHeight(lines []string) []string {
	if s.height <= 0 {
		return lines
	}
	target := s.height - s.borderRows()
	if target < 0 {
		target = 0
	}
	if len(lines) < target {
		blank := strings.Repeat(" ", maxVisible(lines))
		for len(lines) < target {
			lines = append(lines, blank)
		}
	} else if len(lines) > target {
		lines = lines[:target]
	}
	return lines
}

// applyAlign distributes each line's slack according to the alignment
// position: int(gap*align) columns on the left, the remainder on the right.
func (s Style) applyAlign(lines []string) []string {
	if s.align == 0 {
		return lines
	}
	maxW := maxVisible(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		gap := maxW - width.VisibleWidth(line)
		if gap <= 0 {
			out[i] = line
			continue
		}
		lp := int(float64(gap) * s.align)
		out[i] = strings.Repeat(" ", lp) + line + strings.Repeat(" ", gap-lp)
	}
	return out
}

// applyBorder draws the enabled border edges around the block. The border
// color, if set, is opened and reset per segment so it never bleeds into
// the body.
func (s Style) applyBorder(lines []string) []string {
	b := s.border
	if b == nil {
		return lines
	}

	contentW := maxVisible(lines)

	bfg := fgCode(s.borderFg)
	breset := ""
	if bfg != "" {
		breset = reset
	}

	var out []string

	if s.borderSides[top] {
		tl, tr := "", ""
		if s.borderSides[left] {
			tl = b.TopLeft
		}
		if s.borderSides[right] {
			tr = b.TopRight
		}
		out = append(out, bfg+tl+strings.Repeat(b.Horizontal, contentW)+tr+breset)
	}

	for _, line := range lines {
		padded := line + strings.Repeat(" ", contentW-width.VisibleWidth(line))
		lv, rv := "", ""
		if s.borderSides[left] {
			lv = bfg + b.Vertical + breset
		}
		if s.borderSides[right] {
			rv = bfg + b.Vertical + breset
		}
		out = append(out, lv+padded+rv)
	}

	if s.borderSides[bottom] {
		bl, br := "", ""
		if s.borderSides[left] {
			bl = b.BottomLeft
		}
		if s.borderSides[right] {
			br = b.BottomRight
		}
		out = append(out, bfg+bl+strings.Repeat(b.Horizontal, contentW)+br+breset)
	}

	return out
}

// applyMargin adds uncolored spacing outside the border.
func (s Style) applyMargin(lines []string) []string {
	out := lines
	if s.margin[left] > 0 || s.margin[right] > 0 {
		lm := strings.Repeat(" ", s.margin[left])
		rm := strings.Repeat(" ", s.margin[right])
		withSides := make([]string, len(out))
		for i, l := range out {
			withSides[i] = lm + l + rm
		}
		out = withSides
	}
	if s.margin[top] > 0 {
		out = append(make([]string, s.margin[top]), out...)
	}
	for i := 0; i < s.margin[bottom]; i++ {
		out = append(out, "")
	}
	return out
}
