// ABOUTME: Tests for the style builder and its render pipeline
// ABOUTME: Covers immutability, box model math, borders, and SGR wrapping

package style

import (
	"strings"
	"testing"

	"github.com/andrew-roci/snaptui/width"
)

func TestSettersDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := New()
	_ = base.Bold(true).Foreground("#FF0000").Padding(1).Width(20).Border(RoundedBorder)

	if got := base.Render("plain"); got != "plain" {
		t.Fatalf("zero style mutated by chained setters: %q", got)
	}
}

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	if got := New().Render("hello"); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestRenderAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"bold", New().Bold(true), "\x1b[1mhi\x1b[0m"},
		{"dim", New().Dim(true), "\x1b[2mhi\x1b[0m"},
		{"italic", New().Italic(true), "\x1b[3mhi\x1b[0m"},
		{"underline", New().Underline(true), "\x1b[4mhi\x1b[0m"},
		{"reverse", New().Reverse(true), "\x1b[7mhi\x1b[0m"},
		{"strikethrough", New().Strikethrough(true), "\x1b[9mhi\x1b[0m"},
		{"fg", New().Foreground("#FF0000"), "\x1b[38;2;255;0;0mhi\x1b[0m"},
		{"bg", New().Background("#0000FF"), "\x1b[48;2;0;0;255mhi\x1b[0m"},
		{"bold then fg", New().Bold(true).Foreground("#FFFFFF"), "\x1b[1m\x1b[38;2;255;255;255mhi\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.style.Render("hi"); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundedBorderFixedWidth(t *testing.T) {
	t.Parallel()

	out := New().Border(RoundedBorder).Width(10).Render("hi")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), out)
	}

	if lines[0] != "╭────────╮" {
		t.Errorf("top line = %q", lines[0])
	}
	if lines[1] != "│hi      │" {
		t.Errorf("middle line = %q", lines[1])
	}
	if lines[2] != "╰────────╯" {
		t.Errorf("bottom line = %q", lines[2])
	}
	for i, l := range lines {
		if w := width.VisibleWidth(l); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}

func TestBorderUniformWidth(t *testing.T) {
	t.Parallel()

	out := New().Border(NormalBorder).Render("short\na longer line")
	lines := strings.Split(out, "\n")
	w := width.VisibleWidth(lines[0])
	for i, l := range lines[1:] {
		if lw := width.VisibleWidth(l); lw != w {
			t.Fatalf("line %d width = %d, want %d (%q)", i+1, lw, w, l)
		}
	}
}

func TestBorderSides(t *testing.T) {
	t.Parallel()

	// Left edge only, like a focus indicator gutter.
	out := New().Border(ThickBorder, false, false, false, true).Render("x")
	if out != "┃x" {
		t.Fatalf("got %q, want %q", out, "┃x")
	}

	// Top and bottom only.
	out = New().Border(NormalBorder, true, false, true, false).Render("ab")
	want := "──\nab\n──"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestBorderForeground(t *testing.T) {
	t.Parallel()

	out := New().Border(NormalBorder).BorderForeground("#FF0000").Render("x")
	lines := strings.Split(out, "\n")
	red := "\x1b[38;2;255;0;0m"

	if !strings.HasPrefix(lines[0], red) || !strings.HasSuffix(lines[0], "\x1b[0m") {
		t.Errorf("top border not colored: %q", lines[0])
	}
	// Body stays uncolored between the two vertical edges.
	if !strings.Contains(lines[1], red+"│"+"\x1b[0m"+"x") {
		t.Errorf("left edge color bleeds into body: %q", lines[1])
	}
}

func TestPaddingShorthand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"one value", New().Padding(1), "    \n hi \n    "},
		{"two values", New().Padding(0, 2), "  hi  "},
		{"four values", New().Padding(0, 1, 0, 3), "   hi "},
		{"left only", New().PaddingLeft(2), "  hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.style.Render("hi"); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaddingBadArity(t *testing.T) {
	t.Parallel()

	s := New().Padding(1, 2, 3)
	if s.Err() == nil {
		t.Fatal("want error for 3-value padding")
	}
	// Bad shorthand leaves padding unset.
	if got := s.Render("hi"); got != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestMargin(t *testing.T) {
	t.Parallel()

	out := New().Margin(1, 2).Render("hi")
	want := "\n  hi  \n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestMarginStaysUncolored(t *testing.T) {
	t.Parallel()

	out := New().Background("#0000FF").Margin(0, 1).Render("hi")
	if !strings.HasPrefix(out, " \x1b[48;2;0;0;255m") {
		t.Fatalf("margin space should precede the SGR prefix: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m ") {
		t.Fatalf("margin space should follow the reset: %q", out)
	}
}

func TestWidthWrapsContent(t *testing.T) {
	t.Parallel()

	out := New().Width(6).Render("hello world")
	want := "hello \nworld "
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestAlign(t *testing.T) {
	t.Parallel()

	// Alignment distributes slack against the widest line of the block.
	tests := []struct {
		name string
		pos  float64
		want string
	}{
		{"left", 0, "hi    \nhello!"},
		{"center", 0.5, "  hi  \nhello!"},
		{"right", 1, "    hi\nhello!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := New().Align(tt.pos).Render("hi\nhello!")
			if got != tt.want {
				t.Fatalf("align %v: got %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	t.Parallel()

	out := New().Height(3).Render("hi")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), out)
	}
	if lines[1] != "  " || lines[2] != "  " {
		t.Fatalf("filler lines should match content width: %q", out)
	}
}

func TestMaxHeightTruncates(t *testing.T) {
	t.Parallel()

	out := New().MaxHeight(2).Render("a\nb\nc\nd")
	if out != "a\nb" {
		t.Fatalf("got %q, want %q", out, "a\nb")
	}
}

func TestMaxWidthTruncates(t *testing.T) {
	t.Parallel()

	out := New().MaxWidth(3).Render("abcdef")
	if out != "abc" {
		t.Fatalf("got %q, want %q", out, "abc")
	}
}

func TestBackgroundFillsNormalizedLines(t *testing.T) {
	t.Parallel()

	out := New().Background("#000000").Render("a\nlonger")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %q", out)
	}
	for i, l := range lines {
		if w := width.VisibleWidth(l); w != 6 {
			t.Errorf("line %d width = %d, want 6 (%q)", i, w, l)
		}
	}
}

func TestInvalidColorRecordsError(t *testing.T) {
	t.Parallel()

	s := New().Foreground("not-a-color")
	if s.Err() == nil {
		t.Fatal("want error for invalid hex color")
	}
	if got := s.Render("hi"); got != "hi" {
		t.Fatalf("invalid color should render plain, got %q", got)
	}
}
