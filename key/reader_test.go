// ABOUTME: Tests for the event reader's byte-stream decoding
// ABOUTME: Covers ESC disambiguation timeouts, UTF-8 assembly, paste/focus markers

package key

import (
	"io"
	"strings"
	"testing"
	"time"
)

const testTimeout = 200 * time.Millisecond

func readAll(t *testing.T, data string, n int) []Event {
	t.Helper()

	d := NewReader(strings.NewReader(data))
	defer d.Close()

	var events []Event
	for i := 0; i < n; i++ {
		ev, ok := d.ReadEvent(testTimeout)
		if !ok {
			t.Fatalf("event %d: no event decoded", i)
		}
		events = append(events, ev)
	}
	return events
}

func TestReadEventArrow(t *testing.T) {
	t.Parallel()

	ev := readAll(t, "\x1b[A", 1)[0]
	if k, ok := ev.(KeyMsg); !ok || k.Key != KeyUp {
		t.Fatalf("got %+v, want up", ev)
	}
}

func TestReadEventBareEsc(t *testing.T) {
	t.Parallel()

	// No byte follows ESC before the speculative timeout.
	ev := readAll(t, "\x1b", 1)[0]
	if k, ok := ev.(KeyMsg); !ok || k.Key != KeyEsc {
		t.Fatalf("got %+v, want esc", ev)
	}
}

func TestReadEventAltChar(t *testing.T) {
	t.Parallel()

	ev := readAll(t, "\x1ba", 1)[0]
	if k, ok := ev.(KeyMsg); !ok || k.Key != "alt+a" || k.Char != "a" {
		t.Fatalf("got %+v, want alt+a", ev)
	}
}

func TestReadEventPrintableRun(t *testing.T) {
	t.Parallel()

	events := readAll(t, "ab ", 3)
	want := []KeyMsg{
		{Key: "a", Char: "a"},
		{Key: "b", Char: "b"},
		{Key: KeySpace, Char: " "},
	}
	for i, ev := range events {
		if k := ev.(KeyMsg); k != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, k, want[i])
		}
	}
}

func TestReadEventCtrl(t *testing.T) {
	t.Parallel()

	ev := readAll(t, "\x03", 1)[0]
	if k := ev.(KeyMsg); k.Key != "ctrl+c" {
		t.Fatalf("got %+v, want ctrl+c", ev)
	}
}

func TestReadEventUTF8(t *testing.T) {
	t.Parallel()

	events := readAll(t, "é漢", 2)
	if k := events[0].(KeyMsg); k.Key != "é" || k.Char != "é" {
		t.Errorf("got %+v, want é", events[0])
	}
	if k := events[1].(KeyMsg); k.Key != "漢" {
		t.Errorf("got %+v, want 漢", events[1])
	}
}

func TestReadEventShortUTF8(t *testing.T) {
	t.Parallel()

	// Lead byte promises two continuation bytes; none arrive.
	ev := readAll(t, "\xe2", 1)[0]
	k, ok := ev.(KeyMsg)
	if !ok || !strings.HasPrefix(k.Key, "unknown(") {
		t.Fatalf("got %+v, want unknown event", ev)
	}
}

func TestReadEventPasteMarkers(t *testing.T) {
	t.Parallel()

	events := readAll(t, "\x1b[200~\x1b[201~", 2)
	if p := events[0].(PasteMsg); !p.Begin {
		t.Errorf("first event = %+v, want paste begin", events[0])
	}
	if p := events[1].(PasteMsg); p.Begin {
		t.Errorf("second event = %+v, want paste end", events[1])
	}
}

func TestReadEventFocusMarkers(t *testing.T) {
	t.Parallel()

	events := readAll(t, "\x1b[I\x1b[O", 2)
	if f := events[0].(FocusMsg); !f.Gained {
		t.Errorf("first event = %+v, want focus gained", events[0])
	}
	if f := events[1].(FocusMsg); f.Gained {
		t.Errorf("second event = %+v, want focus lost", events[1])
	}
}

func TestReadEventMouse(t *testing.T) {
	t.Parallel()

	ev := readAll(t, "\x1b[<0;3;2M", 1)[0]
	m, ok := ev.(MouseMsg)
	if !ok {
		t.Fatalf("got %T, want MouseMsg", ev)
	}
	if m.X != 2 || m.Y != 1 || m.Button != MouseLeft || m.Action != MousePress {
		t.Fatalf("got %+v", m)
	}
}

func TestReadEventMalformedMouse(t *testing.T) {
	t.Parallel()

	// Two params instead of three; terminator arrives, decode yields nothing.
	d := NewReader(strings.NewReader("\x1b[<0;10M"))
	defer d.Close()

	if ev, ok := d.ReadEvent(testTimeout); ok {
		t.Fatalf("malformed mouse produced event %+v", ev)
	}
}

func TestReadEventUnknownCSI(t *testing.T) {
	t.Parallel()

	ev := readAll(t, "\x1b[99X", 1)[0]
	k, ok := ev.(KeyMsg)
	if !ok || !strings.HasPrefix(k.Key, "unknown(") {
		t.Fatalf("got %+v, want unknown event", ev)
	}
}

func TestReadEventTimeout(t *testing.T) {
	t.Parallel()

	r, w := io.Pipe()
	defer w.Close()

	d := NewReader(r)
	defer d.Close()

	start := time.Now()
	if _, ok := d.ReadEvent(30 * time.Millisecond); ok {
		t.Fatal("expected timeout")
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Fatalf("timeout took %v", elapsed)
	}
}
