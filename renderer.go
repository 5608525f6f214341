// ABOUTME: Line-diff renderer: homes the cursor, rewrites only changed
// ABOUTME: lines, and wraps each frame in a synchronized-output bracket

package snaptui

import (
	"strings"
	"sync/atomic"

	"github.com/andrew-roci/snaptui/terminal"
	"github.com/andrew-roci/snaptui/width"
)

// renderer holds the previous frame's lines and writes minimal updates.
// Only the dispatch goroutine calls render; Repaint may be called from
// signal handlers, hence the atomic flag.
type renderer struct {
	out       terminal.Terminal
	prevLines []string
	repaint   atomic.Bool
}

func newRenderer(out terminal.Terminal) *renderer {
	return &renderer{out: out}
}

// Repaint forces every line to be rewritten on the next render. The flag
// auto-clears after one frame.
func (r *renderer) Repaint() {
	r.repaint.Store(true)
}

// render writes output to the terminal, updating only lines that differ
// from the previous frame. Content is clipped to the terminal size. A
// non-nil cursor is placed (0-based within the content) and shown;
// otherwise the cursor stays hidden.
func (r *renderer) render(output string, w, h int, cursor *Cursor) error {
	newLines := strings.Split(output, "\n")
	if len(newLines) > h {
		newLines = newLines[:h]
	}

	var buf strings.Builder
	buf.WriteString(terminal.CursorHome)

	maxLines := len(newLines)
	if len(r.prevLines) > maxLines {
		maxLines = len(r.prevLines)
	}
	repaint := r.repaint.Swap(false)

	for i := 0; i < maxLines && i < h; i++ {
		var newLine string
		if i < len(newLines) {
			newLine = newLines[i]
		}
		if !repaint && i < len(r.prevLines) && r.prevLines[i] == newLine {
			// Unchanged: advance without rewriting.
			if i < maxLines-1 {
				buf.WriteString("\r\n")
			}
			continue
		}

		buf.WriteString(width.Truncate(newLine, w))
		buf.WriteString(terminal.EraseLineRight)
		if i < maxLines-1 {
			buf.WriteString("\r\n")
		}
	}

	if len(r.prevLines) > len(newLines) {
		buf.WriteString(terminal.EraseScreenBelow)
	}

	if cursor != nil {
		buf.WriteString(terminal.CursorTo(cursor.Row+1, cursor.Col+1))
		buf.WriteString(terminal.ShowCursor)
	} else {
		buf.WriteString(terminal.HideCursor)
	}

	frame := terminal.SyncBegin + buf.String() + terminal.SyncEnd
	if _, err := r.out.Write([]byte(frame)); err != nil {
		return err
	}

	r.prevLines = newLines
	return nil
}

// clear erases the screen and drops the diff baseline.
func (r *renderer) clear() error {
	r.prevLines = nil
	_, err := r.out.Write([]byte(terminal.EraseEntireScreen + terminal.CursorHome))
	return err
}
