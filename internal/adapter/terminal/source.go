package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/remap/internal/input/code"
)

// Handler receives translated raw input events.
// OnEvent returns true if the event was handled downstream; the source does
// not act on the result, it exists so a dispatcher can be used directly.
type Handler interface {
	OnEvent(ev code.Event) bool
}

// Source polls a tcell screen and delivers translated events to a Handler.
// The caller owns the screen's lifecycle (Init/Fini).
type Source struct {
	screen tcell.Screen

	// prevButtons tracks mouse button state between events so transitions
	// can be synthesized as press/release pairs.
	prevButtons tcell.ButtonMask

	resizeHandler func(width, height int)
}

// New creates a source reading from the given screen.
func New(screen tcell.Screen) *Source {
	return &Source{screen: screen}
}

// OnResize sets a callback invoked when the terminal is resized.
func (s *Source) OnResize(fn func(width, height int)) {
	s.resizeHandler = fn
}

// Run polls the screen and delivers events until Stop is called or the
// screen is finalized. Events are delivered synchronously, one at a time,
// from this goroutine only.
func (s *Source) Run(h Handler) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			if c, ok := TranslateKey(e); ok {
				h.OnEvent(code.NewPressEvent(c))
			}

		case *tcell.EventMouse:
			for _, out := range TranslateMouse(e, s.prevButtons) {
				h.OnEvent(out)
			}
			s.prevButtons = e.Buttons()

		case *tcell.EventResize:
			w, hh := e.Size()
			s.screen.Sync()
			if s.resizeHandler != nil {
				s.resizeHandler(w, hh)
			}

		case *tcell.EventInterrupt:
			return nil
		}
	}
}

// Stop unblocks a running Run loop.
func (s *Source) Stop() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
