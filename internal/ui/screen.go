// Package ui draws the game on a tcell terminal and runs its menus.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// eventBuffer is how many terminal events may queue between frames.
const eventBuffer = 64

// Screen wraps tcell.Screen with a simplified interface. Terminal events are
// read by a single goroutine and queued on a channel, so the game loop can
// drain them once per frame without blocking.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s and starts reading its events.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	scr := wrapScreen(s)
	go scr.pump()
	return scr, nil
}

func wrapScreen(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
}

func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Events returns the queue of terminal events. It is closed once the screen
// is finalized.
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	select {
	case <-s.quit:
		return
	default:
		close(s.quit)
	}
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PutText writes text starting at (x, y) and returns the column after it.
// Wide runes take two cells; zero-width runes are dropped. Text past the
// right edge is cut off.
func (s *Screen) PutText(x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// PutCentered writes text centered on row y.
func (s *Screen) PutCentered(y int, text string, style tcell.Style) {
	w, _ := s.Size()
	s.PutText((w-runewidth.StringWidth(text))/2, y, text, style)
}
