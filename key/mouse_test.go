// ABOUTME: Tests for SGR mouse report decoding
// ABOUTME: Covers buttons, wheel, motion, release, and malformed reports

package key

import "testing"

func TestParseSGRMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seq  string
		want MouseMsg
	}{
		{
			name: "left press",
			seq:  "\x1b[<0;10;5M",
			want: MouseMsg{X: 9, Y: 4, Button: MouseLeft, Action: MousePress},
		},
		{
			name: "left release",
			seq:  "\x1b[<0;10;5m",
			want: MouseMsg{X: 9, Y: 4, Button: MouseLeft, Action: MouseRelease},
		},
		{
			name: "middle press",
			seq:  "\x1b[<1;1;1M",
			want: MouseMsg{X: 0, Y: 0, Button: MouseMiddle, Action: MousePress},
		},
		{
			name: "right press",
			seq:  "\x1b[<2;1;1M",
			want: MouseMsg{X: 0, Y: 0, Button: MouseRight, Action: MousePress},
		},
		{
			name: "wheel up",
			seq:  "\x1b[<64;10;5M",
			want: MouseMsg{X: 9, Y: 4, Button: MouseNone, Action: MouseWheelUp},
		},
		{
			name: "wheel down",
			seq:  "\x1b[<65;10;5M",
			want: MouseMsg{X: 9, Y: 4, Button: MouseNone, Action: MouseWheelDown},
		},
		{
			name: "motion",
			seq:  "\x1b[<32;15;20M",
			want: MouseMsg{X: 14, Y: 19, Button: MouseLeft, Action: MouseMotion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseSGRMouse([]byte(tt.seq))
			if !ok {
				t.Fatalf("parseSGRMouse(%q) failed", tt.seq)
			}
			if got != tt.want {
				t.Errorf("parseSGRMouse(%q) = %+v, want %+v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestParseSGRMouseMalformed(t *testing.T) {
	t.Parallel()

	for _, seq := range []string{"\x1b[A", "\x1b[<0;10M", "\x1b[<a;b;cM", "\x1b[<0;10;5"} {
		if _, ok := parseSGRMouse([]byte(seq)); ok {
			t.Errorf("parseSGRMouse(%q) succeeded on malformed input", seq)
		}
	}
}
