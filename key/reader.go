// ABOUTME: Reader turns a raw byte stream into input events with bounded timeouts
// ABOUTME: Speculative ESC decoding, UTF-8 assembly, SGR mouse, paste and focus markers

package key

import (
	"io"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	// escTimeout bounds each speculative read while decoding an escape
	// sequence or a multi-byte UTF-8 character.
	escTimeout = 50 * time.Millisecond

	// maxSeqLen caps escape sequence accumulation. SGR mouse reports are
	// the longest recognized sequences.
	maxSeqLen = 32

	pumpBufSize = 256
)

const (
	pasteBegin = "\x1b[200~"
	pasteEnd   = "\x1b[201~"
	focusIn    = "\x1b[I"
	focusOut   = "\x1b[O"
)

// Reader decodes input events from a raw byte stream. A background
// goroutine pumps bytes from the underlying reader so that decoding can
// apply per-byte timeouts; decoding itself happens on the caller's
// goroutine, one event per ReadEvent call.
type Reader struct {
	bytes     chan byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewReader starts decoding from r.
func NewReader(r io.Reader) *Reader {
	d := &Reader{
		bytes: make(chan byte, pumpBufSize),
		done:  make(chan struct{}),
	}
	go d.pump(r)
	return d
}

// Close stops the pump goroutine. Pending bytes are discarded. A blocked
// Read on the underlying reader is abandoned, not interrupted.
func (d *Reader) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}

func (d *Reader) pump(r io.Reader) {
	buf := make([]byte, pumpBufSize)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case d.bytes <- buf[i]:
			case <-d.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// readByte waits up to timeout for the next raw byte.
func (d *Reader) readByte(timeout time.Duration) (byte, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case b := <-d.bytes:
		return b, true
	case <-timer.C:
		return 0, false
	}
}

// ReadEvent decodes one input event, waiting at most timeout for the first
// byte. It returns false when no byte arrives in time or when a recognized
// but malformed sequence (e.g. a truncated mouse report) decodes to nothing.
func (d *Reader) ReadEvent(timeout time.Duration) (Event, bool) {
	b, ok := d.readByte(timeout)
	if !ok {
		return nil, false
	}

	if b == 0x1b {
		return d.readEscape()
	}
	if name, ok := ctrlNames[b]; ok {
		return KeyMsg{Key: name}, true
	}
	if b < 0x80 {
		if b == ' ' {
			return KeyMsg{Key: KeySpace, Char: " "}, true
		}
		ch := string(rune(b))
		return KeyMsg{Key: ch, Char: ch}, true
	}
	return d.readUTF8(b)
}

// readEscape speculatively accumulates an escape sequence after ESC.
func (d *Reader) readEscape() (Event, bool) {
	buf := []byte{0x1b}

	for len(buf) < maxSeqLen {
		b, ok := d.readByte(escTimeout)
		if !ok {
			break
		}
		buf = append(buf, b)

		if k, ok := sequences[string(buf)]; ok {
			return k, true
		}

		// CSI and SS3 sequences end on a byte in 0x40-0x7E.
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			last := buf[len(buf)-1]
			if last >= 0x40 && last <= 0x7e {
				return d.finishSequence(buf)
			}
		}
	}

	// Timed out or over-long.
	if k, ok := sequences[string(buf)]; ok {
		return k, true
	}
	switch len(buf) {
	case 1:
		return KeyMsg{Key: KeyEsc}, true
	case 2:
		return altKey(buf[1]), true
	}
	return unknownKey(buf), true
}

// finishSequence classifies a complete CSI/SS3 sequence that is not a plain
// key from the lookup table.
func (d *Reader) finishSequence(buf []byte) (Event, bool) {
	switch string(buf) {
	case pasteBegin:
		return PasteMsg{Begin: true}, true
	case pasteEnd:
		return PasteMsg{Begin: false}, true
	case focusIn:
		return FocusMsg{Gained: true}, true
	case focusOut:
		return FocusMsg{Gained: false}, true
	}

	if len(buf) > 2 && buf[1] == '[' && buf[2] == '<' {
		if m, ok := parseSGRMouse(buf); ok {
			return m, true
		}
		// Malformed mouse report: no event.
		return nil, false
	}

	return unknownKey(buf), true
}

// altKey maps ESC followed by exactly one byte to an alt-modified key.
func altKey(b byte) KeyMsg {
	if b >= 0x20 && b < 0x7f {
		ch := string(rune(b))
		return KeyMsg{Key: "alt+" + ch, Char: ch}
	}
	if name, ok := ctrlNames[b]; ok {
		return KeyMsg{Key: "alt+" + name}
	}
	return unknownKey([]byte{0x1b, b})
}

// readUTF8 assembles a multi-byte UTF-8 character from its leading byte.
// Short or invalid reads produce an unknown event carrying the raw bytes.
func (d *Reader) readUTF8(first byte) (Event, bool) {
	var need int
	switch {
	case first&0xe0 == 0xc0:
		need = 1
	case first&0xf0 == 0xe0:
		need = 2
	case first&0xf8 == 0xf0:
		need = 3
	default:
		return unknownKey([]byte{first}), true
	}

	raw := []byte{first}
	for i := 0; i < need; i++ {
		b, ok := d.readByte(escTimeout)
		if !ok {
			return unknownKey(raw), true
		}
		raw = append(raw, b)
	}

	r, size := utf8.DecodeRune(raw)
	if r == utf8.RuneError || size != len(raw) {
		return unknownKey(raw), true
	}
	ch := string(r)
	return KeyMsg{Key: ch, Char: ch}, true
}
