package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/space-dozer/core"
	"github.com/lixenwraith/space-dozer/input"
)

const eventBuffer = 64

// Screen is a raw-mode terminal surface
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	cursorX, cursorY int

	finiOnce sync.Once
}

// Open creates and initializes a screen on the controlling terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap adopts an already initialized tcell screen and starts pumping its events
func Wrap(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()

	t := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	core.Go(t.pump)
	return t
}

func (t *Screen) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Fini restores the terminal. Safe to call more than once.
func (t *Screen) Fini() {
	t.finiOnce.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// Size returns columns and rows
func (t *Screen) Size() (cols, rows int) {
	return t.screen.Size()
}

// SetCursor moves the draw position, x is the column
func (t *Screen) SetCursor(x, y int) {
	t.cursorX, t.cursorY = x, y
}

// DrawGlyph writes glyph at the cursor and advances the cursor past it
func (t *Screen) DrawGlyph(glyph string, style tcell.Style) {
	for _, r := range glyph {
		t.screen.SetContent(t.cursorX, t.cursorY, r, nil, style)
		t.cursorX += max(runewidth.RuneWidth(r), 1)
	}
}

// Erase blanks one cell
func (t *Screen) Erase(x, y int) {
	t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
}

// Clear blanks the whole screen
func (t *Screen) Clear() {
	t.screen.Clear()
}

// Refresh pushes pending changes to the terminal
func (t *Screen) Refresh() {
	t.screen.Show()
}

// PollKey returns the oldest pending keypress, or false when none is waiting.
// Resize events queued ahead of it trigger a full redraw and are consumed.
func (t *Screen) PollKey() (input.Key, bool) {
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return input.KeyFromEvent(ev), true
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return input.Key{}, false
		}
	}
}
