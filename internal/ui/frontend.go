package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/game"
)

// Frontend connects a game to the terminal: it draws frames, hands over key
// presses and runs the in-game menus.
type Frontend struct {
	screen   *Screen
	renderer *Renderer
	menus    *Menus
}

// NewFrontend creates a frontend on screen.
func NewFrontend(screen *Screen) *Frontend {
	return &Frontend{
		screen:   screen,
		renderer: NewRenderer(screen),
		menus:    NewMenus(screen),
	}
}

// Menus returns the menu screens.
func (f *Frontend) Menus() *Menus { return f.menus }

// Draw renders a frame.
func (f *Frontend) Draw(fr game.Frame) {
	f.renderer.Render(fr)
}

// Inputs drains the queued terminal events without blocking. A closed event
// queue reads as a quit.
func (f *Frontend) Inputs() []game.Input {
	var inputs []game.Input
	for {
		select {
		case ev, ok := <-f.screen.Events():
			if !ok {
				return append(inputs, game.InputQuit)
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				f.screen.Sync()
			case *tcell.EventKey:
				if in := KeyToInput(ev); in != game.InputNone {
					inputs = append(inputs, in)
				}
			}
		default:
			return inputs
		}
	}
}

// Pause shows the pause menu.
func (f *Frontend) Pause(ctx context.Context) game.MenuAction {
	return f.menus.Pause(ctx)
}

// GameOver shows the game over menu.
func (f *Frontend) GameOver(ctx context.Context) game.MenuAction {
	return f.menus.GameOver(ctx)
}

// Victory shows the victory menu.
func (f *Frontend) Victory(ctx context.Context, p *entity.Player) game.MenuAction {
	return f.menus.Victory(ctx, p)
}
