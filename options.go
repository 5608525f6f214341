// ABOUTME: Functional options configuring a Program before Run
// ABOUTME: Terminal modes, input source, and the backing Terminal itself

package snaptui

import (
	"io"

	"github.com/andrew-roci/snaptui/terminal"
)

// Option configures a Program.
type Option func(*Program)

// WithTerminal replaces the default process terminal, typically with a
// VirtualTerminal in tests.
func WithTerminal(t terminal.Terminal) Option {
	return func(p *Program) { p.term = t }
}

// WithInput replaces the default input stream (stdin).
func WithInput(r io.Reader) Option {
	return func(p *Program) { p.input = r }
}

// WithoutAltScreen renders inline in the current buffer instead of
// switching to the alternate screen.
func WithoutAltScreen() Option {
	return func(p *Program) { p.altScreen = false }
}

// WithMouse enables SGR mouse tracking for the program's lifetime.
func WithMouse() Option {
	return func(p *Program) { p.mouse = true }
}

// WithBracketedPaste enables bracketed paste, delivering PasteMsg markers
// around pasted text.
func WithBracketedPaste() Option {
	return func(p *Program) { p.bracketedPaste = true }
}
