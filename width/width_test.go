// ABOUTME: Tests for visible width, padding, and ANSI stripping
// ABOUTME: Covers CJK double-width, combining marks, and additivity

package width

import (
	"strings"
	"testing"
)

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "fg color", input: "\x1b[38;2;255;0;0mred\x1b[0m", want: "red"},
		{name: "bold", input: "\x1b[1mbold\x1b[0m", want: "bold"},
		{name: "stacked", input: "\x1b[1m\x1b[38;2;0;255;0mgreen bold\x1b[0m", want: "green bold"},
		{name: "osc title", input: "\x1b]2;title\x07text", want: "text"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "ascii", input: "hello", want: 5},
		{name: "empty", input: "", want: 0},
		{name: "ansi only", input: "\x1b[1m\x1b[0m", want: 0},
		{name: "bold text", input: "\x1b[1mbold\x1b[0m", want: 4},
		{name: "cjk", input: "漢字", want: 4},
		{name: "mixed", input: "a漢b", want: 4},
		{name: "combining mark", input: "é", want: 1},
		{name: "space", input: " ", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleWidthAdditive(t *testing.T) {
	t.Parallel()

	parts := []string{"hello", "漢字", "\x1b[1mbold\x1b[0m", " ", "éx"}
	for _, a := range parts {
		for _, b := range parts {
			sum := VisibleWidth(a) + VisibleWidth(b)
			if got := VisibleWidth(a + b); got != sum {
				t.Errorf("VisibleWidth(%q+%q) = %d, want %d", a, b, got, sum)
			}
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "shorter", input: "hi", w: 5, want: "hi   "},
		{name: "exact", input: "hello", w: 5, want: "hello"},
		{name: "longer untouched", input: "hello!", w: 5, want: "hello!"},
		{name: "ansi", input: "\x1b[1mhi\x1b[0m", w: 5, want: "\x1b[1mhi\x1b[0m   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PadRight(tt.input, tt.w); got != tt.want {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.w, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		w     int
		want  string
	}{
		{name: "shorter", input: "hi", w: 5, want: "hi"},
		{name: "exact", input: "hello", w: 5, want: "hello"},
		{name: "longer", input: "hello world", w: 5, want: "hello"},
		{name: "zero", input: "hello", w: 0, want: ""},
		{name: "wide char omitted", input: "漢字", w: 3, want: "漢"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.input, tt.w); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.w, got, tt.want)
			}
		})
	}
}

func TestTruncatePreservesANSI(t *testing.T) {
	t.Parallel()

	got := Truncate("\x1b[1mhello world\x1b[0m", 5)
	if VisibleWidth(got) != 5 {
		t.Fatalf("visible width = %d, want 5", VisibleWidth(got))
	}
	if !strings.Contains(got, "\x1b[1m") {
		t.Fatalf("bold sequence dropped: %q", got)
	}
}

func TestTruncateIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"hello world", "漢字漢字", "\x1b[1mstyled text\x1b[0m plain"}
	for _, s := range inputs {
		for w := 0; w <= 8; w++ {
			once := Truncate(s, w)
			twice := Truncate(once, w)
			if once != twice {
				t.Errorf("Truncate(%q, %d) not idempotent: %q vs %q", s, w, once, twice)
			}
		}
	}
}

func BenchmarkVisibleWidthASCII(b *testing.B) {
	s := strings.Repeat("lorem ipsum ", 8)
	for i := 0; i < b.N; i++ {
		VisibleWidth(s)
	}
}

func BenchmarkVisibleWidthANSI(b *testing.B) {
	s := strings.Repeat("\x1b[38;2;125;86;244mlorem\x1b[0m ", 8)
	for i := 0; i < b.N; i++ {
		VisibleWidth(s)
	}
}
