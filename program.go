// ABOUTME: Program is the event loop: raw-mode lifecycle, input dispatch,
// ABOUTME: command scheduling, subscription reconciliation, and rendering

package snaptui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/andrew-roci/snaptui/internal/log"
	"github.com/andrew-roci/snaptui/key"
	"github.com/andrew-roci/snaptui/terminal"
)

// readTimeout bounds each blocking input read. It is also the upper bound
// on delivery latency for queued asynchronous messages.
const readTimeout = 20 * time.Millisecond

// Program runs a Model against a terminal. Only one Program may run per
// process at a time: resize and suspend signal handlers are process-wide.
type Program struct {
	model Model
	term  terminal.Terminal
	input io.Reader

	altScreen      bool
	mouse          bool
	bracketedPaste bool

	started  atomic.Bool
	quitting bool

	queue      queue
	renderer   *renderer
	reader     *key.Reader
	width      int
	height     int
	prevView   *View
	activeSubs map[string]func()
}

// NewProgram returns a Program for model. By default it uses the process
// terminal, reads stdin, and runs on the alternate screen.
func NewProgram(model Model, opts ...Option) *Program {
	p := &Program{
		model:      model,
		term:       terminal.NewProcessTerminal(),
		input:      os.Stdin,
		altScreen:  true,
		width:      80,
		height:     24,
		activeSubs: make(map[string]func()),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.renderer = newRenderer(p.term)
	return p
}

// Run blocks until the program quits and returns the final model. The
// terminal is restored on every exit path, including panics unwinding
// through the loop.
func (p *Program) Run() (Model, error) {
	if !p.started.CompareAndSwap(false, true) {
		return p.model, errors.New("program has already run")
	}

	if err := p.term.EnterRawMode(); err != nil {
		return p.model, fmt.Errorf("starting program: %w", err)
	}
	p.reader = key.NewReader(p.input)

	defer func() {
		p.stopAllSubs()
		p.writeString(p.teardownSequence())
		_ = p.term.ExitRawMode()
		p.reader.Close()
		log.Debug("program stopped")
	}()

	p.writeString(p.setupSequence())

	if w, h, err := p.term.Size(); err == nil {
		p.width, p.height = w, h
	}
	p.dispatch(WindowSizeMsg{Width: p.width, Height: p.height})

	p.term.OnResize(func(w, h int) {
		p.queue.push(WindowSizeMsg{Width: w, Height: h})
	})
	p.term.OnSuspendResume(p.onSuspend, p.onResume)

	if cmd := p.model.Init(); cmd != nil {
		p.exec(cmd)
	}
	p.syncSubs()
	p.render()
	log.Debug("program started, %dx%d", p.width, p.height)

	for !p.quitting {
		if ev, ok := p.reader.ReadEvent(readTimeout); ok {
			p.dispatch(ev)
		}
		for !p.quitting {
			msg, ok := p.queue.tryPop()
			if !ok {
				break
			}
			p.dispatch(msg)
		}
	}

	return p.model, nil
}

// Send delivers a message to the program from any goroutine. It is the
// emit path handed to subscriptions.
func (p *Program) Send(msg Msg) {
	p.queue.push(msg)
}

// Quit asks the program to stop after the currently queued messages.
func (p *Program) Quit() {
	p.queue.push(QuitMsg{})
}

// dispatch routes one message. Quit halts the loop without reaching the
// model; ctrl+z routes to OS suspend; a resize updates stored dimensions
// and forces a repaint before the model sees it.
func (p *Program) dispatch(msg Msg) {
	switch m := msg.(type) {
	case QuitMsg:
		p.quitting = true
		return
	case batchMsg:
		for _, inner := range m {
			p.dispatch(inner)
			if p.quitting {
				return
			}
		}
		return
	case KeyMsg:
		if m.Key == key.KeyCtrlZ {
			if err := p.term.Suspend(); err != nil {
				log.Warn("suspend failed: %v", err)
			}
			return
		}
	case WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height
		p.renderer.Repaint()
	}

	model, cmd := p.model.Update(msg)
	p.model = model
	if cmd != nil {
		p.exec(cmd)
	}
	p.syncSubs()
	p.render()
}

// exec runs a command on its own goroutine and feeds its result back into
// the queue. Batched results are enqueued as one unit.
func (p *Program) exec(cmd Cmd) {
	go func() {
		defer terminal.RecoverGoroutine(p.term)

		switch m := cmd().(type) {
		case nil:
		case batchMsg:
			p.queue.pushAll(m)
		default:
			p.queue.push(m)
		}
	}()
}

// syncSubs reconciles running subscriptions with the model's declared
// set: stop what is no longer declared, start what is newly declared.
func (p *Program) syncSubs() {
	sub, ok := p.model.(Subscriber)
	if !ok {
		return
	}

	desired := sub.Subscriptions()
	declared := make(map[string]bool, len(desired))
	for _, s := range desired {
		declared[s.Key] = true
	}

	for k, stop := range p.activeSubs {
		if !declared[k] {
			stop()
			delete(p.activeSubs, k)
			log.Debug("subscription stopped: %s", k)
		}
	}
	for _, s := range desired {
		if _, running := p.activeSubs[s.Key]; !running {
			p.activeSubs[s.Key] = s.Start(p.Send)
			log.Debug("subscription started: %s", s.Key)
		}
	}
}

func (p *Program) stopAllSubs() {
	for k, stop := range p.activeSubs {
		stop()
		delete(p.activeSubs, k)
	}
}

// render draws the current model view and applies frame-level terminal
// state (alt-screen, title) by diffing against the previous frame.
func (p *Program) render() {
	view := p.currentView()
	p.applyViewState(view)
	if err := p.renderer.render(view.Content, p.width, p.height, view.Cursor); err != nil {
		log.Error("render failed: %v", err)
	}
	p.prevView = &view
}

func (p *Program) currentView() View {
	if vm, ok := p.model.(ViewModel); ok {
		return vm.ViewState()
	}
	return View{Content: p.model.View(), AltScreen: p.altScreen}
}

// applyViewState emits alt-screen and title changes, deduplicated
// frame-to-frame.
func (p *Program) applyViewState(view View) {
	var buf string
	if p.prevView != nil && view.AltScreen != p.prevView.AltScreen {
		if view.AltScreen {
			buf += terminal.AltScreenOn
		} else {
			buf += terminal.AltScreenOff
		}
	}
	if view.Title != "" && (p.prevView == nil || view.Title != p.prevView.Title) {
		buf += terminal.SetWindowTitle(view.Title)
	}
	if buf != "" {
		p.writeString(buf)
	}
}

// setupSequence enters the configured terminal modes.
func (p *Program) setupSequence() string {
	var s string
	if p.altScreen {
		s += terminal.AltScreenOn
	}
	s += terminal.HideCursor
	if p.mouse {
		s += terminal.EnableMouse
	}
	if p.bracketedPaste {
		s += terminal.EnableBracketedPaste
	}
	return s
}

// teardownSequence undoes setupSequence, in reverse.
func (p *Program) teardownSequence() string {
	s := terminal.ShowCursor
	if p.mouse {
		s += terminal.DisableMouse
	}
	if p.bracketedPaste {
		s += terminal.DisableBracketedPaste
	}
	if p.altScreen {
		s += terminal.AltScreenOff
	}
	return s
}

// onSuspend tears down terminal-visible state before the process stops.
// Runs on the signal goroutine.
func (p *Program) onSuspend() {
	p.writeString(p.teardownSequence())
	_ = p.term.ExitRawMode()
	log.Debug("suspending")
}

// onResume restores raw mode and setup after SIGCONT, forces a repaint,
// and synthesizes a resize in case dimensions changed while stopped.
func (p *Program) onResume() {
	_ = p.term.EnterRawMode()
	p.writeString(p.setupSequence())
	p.renderer.Repaint()

	w, h := p.width, p.height
	if nw, nh, err := p.term.Size(); err == nil {
		w, h = nw, nh
	}
	p.queue.push(WindowSizeMsg{Width: w, Height: h})
	log.Debug("resumed, %dx%d", w, h)
}

func (p *Program) writeString(s string) {
	if s == "" {
		return
	}
	if _, err := p.term.Write([]byte(s)); err != nil {
		log.Error("terminal write failed: %v", err)
	}
}
