// ABOUTME: Tests for key tables and symbolic name mapping
// ABOUTME: Covers escape sequence table, control byte map, and alt keys

package key

import "testing"

func TestSequenceTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seq  string
		want string
	}{
		{"\x1b[A", KeyUp},
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
		{"\x1bOP", "f1"},
		{"\x1bOQ", "f2"},
		{"\x1b[H", KeyHome},
		{"\x1b[F", KeyEnd},
		{"\x1b[3~", KeyDelete},
		{"\x1b[Z", KeyShiftTab},
		{"\x1b[1;5C", "ctrl+right"},
	}

	for _, tt := range tests {
		k, ok := sequences[tt.seq]
		if !ok {
			t.Errorf("sequence %q missing from table", tt.seq)
			continue
		}
		if k.Key != tt.want {
			t.Errorf("sequence %q = %q, want %q", tt.seq, k.Key, tt.want)
		}
	}
}

func TestCtrlNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		b    byte
		want string
	}{
		{0x0d, KeyEnter},
		{0x09, KeyTab},
		{0x03, "ctrl+c"},
		{0x13, "ctrl+s"},
		{0x7f, KeyBackspace},
		{0x08, KeyBackspace},
	}

	for _, tt := range tests {
		if got := ctrlNames[tt.b]; got != tt.want {
			t.Errorf("ctrlNames[%#x] = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestAltKey(t *testing.T) {
	t.Parallel()

	if k := altKey('a'); k.Key != "alt+a" || k.Char != "a" {
		t.Errorf("altKey('a') = %+v", k)
	}
	if k := altKey(0x03); k.Key != "alt+ctrl+c" {
		t.Errorf("altKey(0x03) = %+v", k)
	}
}

func TestKeyMsgString(t *testing.T) {
	t.Parallel()

	if s := (KeyMsg{Key: KeyEnter}).String(); s != "enter" {
		t.Errorf("String() = %q", s)
	}
}
