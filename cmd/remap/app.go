package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/remap/internal/adapter/terminal"
	"github.com/dshills/remap/internal/dispatch"
	"github.com/dshills/remap/internal/input/action"
)

// menuItems are the entries shown by the menu overlay.
var menuItems = []string{"Resume", "Inventory", "Settings", "Quit"}

// app owns the screen and the two demo subscriber layers.
type app struct {
	mu sync.Mutex

	screen     tcell.Screen
	source     *terminal.Source
	dispatcher *dispatch.Dispatcher

	game *gameLayer
	menu *menuLayer

	messages []string
	finished bool
}

func newApp(dispatcher *dispatch.Dispatcher) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		screen:     screen,
		source:     terminal.New(screen),
		dispatcher: dispatcher,
	}
	a.game = &gameLayer{app: a, x: 10, y: 5}
	a.menu = &menuLayer{app: a}

	// Diagnostics surface in the on-screen log rather than corrupting the
	// terminal with stderr writes.
	dispatcher.SetSink(dispatch.SinkFunc(a.recordDiagnostic))

	if err := dispatcher.Subscribe(a.game); err != nil {
		screen.Fini()
		return nil, err
	}

	a.source.OnResize(func(_, _ int) { a.draw() })

	return a, nil
}

// Run drives the input loop until the game layer requests quit.
func (a *app) Run() error {
	a.draw()
	return a.source.Run(a.dispatcher)
}

// Shutdown restores the terminal. Safe to call more than once.
func (a *app) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finished {
		return
	}
	a.finished = true
	a.screen.Fini()
}

// Notify appends a message to the on-screen log.
func (a *app) Notify(msg string) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	if len(a.messages) > 8 {
		a.messages = a.messages[len(a.messages)-8:]
	}
	a.mu.Unlock()
	a.draw()
}

// recordDiagnostic formats dispatch diagnostics into the log.
func (a *app) recordDiagnostic(d dispatch.Diagnostic) {
	switch d.Kind {
	case dispatch.DiagUnboundInput:
		a.Notify("unbound: " + d.Code.String())
	case dispatch.DiagUnhandledAction:
		// Expected during play; only releases and exotic actions end up here.
	case dispatch.DiagSubscriberFailure:
		a.Notify("subscriber failure: " + d.Err.Error())
	}
}

// openMenu subscribes the menu overlay, putting it in front of the game.
func (a *app) openMenu() {
	a.menu.selected = 0
	_ = a.dispatcher.Subscribe(a.menu)
	a.Notify("menu opened")
}

// closeMenu unsubscribes the overlay. Called from inside the menu's own
// handling, which is safe: the in-progress dispatch iterates a snapshot.
func (a *app) closeMenu() {
	a.dispatcher.Unsubscribe(a.menu)
	a.Notify("menu closed")
}

// draw renders the demo state.
func (a *app) draw() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finished {
		return
	}

	a.screen.Clear()
	style := tcell.StyleDefault

	drawText(a.screen, 0, 0, style.Bold(true), "remap demo - wasd/arrows move, e interact, Esc menu, q quits")

	drawText(a.screen, a.game.x, a.game.y+2, style, "@")
	drawText(a.screen, 0, 1, style, fmt.Sprintf("pos=(%d,%d)", a.game.x, a.game.y))

	if a.dispatcher.Registry().Contains(a.menu) {
		menuStyle := style.Reverse(true)
		for i, item := range menuItems {
			marker := "  "
			if i == a.menu.selected {
				marker = "> "
			}
			drawText(a.screen, 4, 3+i, menuStyle, marker+item)
		}
	}

	_, h := a.screen.Size()
	for i, msg := range a.messages {
		drawText(a.screen, 0, h-len(a.messages)+i, style.Dim(true), msg)
	}

	a.screen.Show()
}

// drawText writes a string at a position.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// gameLayer is the base subscriber: movement, interaction and quit.
type gameLayer struct {
	app  *app
	x, y int
}

// HandleAction implements dispatch.Subscriber.
func (g *gameLayer) HandleAction(act action.Action) bool {
	// Movement repeats while held; everything else fires on press only.
	if act.IsRelease() {
		return false
	}

	switch act.Name {
	case "move.up":
		if g.y > 0 {
			g.y--
		}
	case "move.down":
		g.y++
	case "move.left":
		if g.x > 0 {
			g.x--
		}
	case "move.right":
		g.x++
	case "game.interact":
		g.app.Notify("interact")
	case "game.attack":
		g.app.Notify("attack")
	case "menu.toggle":
		g.app.openMenu()
	case "app.quit":
		g.app.source.Stop()
	default:
		return false
	}

	g.app.draw()
	return true
}

// menuLayer is the overlay subscriber: while open it consumes navigation so
// the game underneath never sees it.
type menuLayer struct {
	app      *app
	selected int
}

// HandleAction implements dispatch.Subscriber.
func (m *menuLayer) HandleAction(act action.Action) bool {
	if act.IsRelease() {
		return false
	}

	switch act.Name {
	case "move.up":
		if m.selected > 0 {
			m.selected--
		}
	case "move.down":
		if m.selected < len(menuItems)-1 {
			m.selected++
		}
	case "menu.select":
		m.app.Notify("selected: " + menuItems[m.selected])
		if menuItems[m.selected] == "Quit" {
			m.app.source.Stop()
		}
	case "menu.toggle":
		m.app.closeMenu()
	default:
		// Unrelated actions fall through to the game layer.
		return false
	}

	m.app.draw()
	return true
}
