package game

import (
	"context"

	"github.com/samdwyer/escapecastle/internal/entity"
)

// MenuAction is what the player picked on a menu screen.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuStart
	MenuExit
	MenuContinue
	MenuExitMainMenu
	MenuExitGame
	MenuRetry
	MenuReplay
)

func (a MenuAction) String() string {
	switch a {
	case MenuNone:
		return "none"
	case MenuStart:
		return "start"
	case MenuExit:
		return "exit"
	case MenuContinue:
		return "continue"
	case MenuExitMainMenu:
		return "exit_main_menu"
	case MenuExitGame:
		return "exit_game"
	case MenuRetry:
		return "retry"
	case MenuReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// Screens are the modal menus shown during a run. Each blocks until the
// player picks something.
type Screens interface {
	// Pause returns MenuContinue, MenuExitMainMenu or MenuExitGame.
	Pause(ctx context.Context) MenuAction
	// GameOver returns MenuRetry, MenuExitMainMenu or MenuExitGame.
	GameOver(ctx context.Context) MenuAction
	// Victory returns MenuReplay, MenuExitMainMenu or MenuExit.
	Victory(ctx context.Context, p *entity.Player) MenuAction
}

// Display draws frames.
type Display interface {
	Draw(f Frame)
}

// InputSource hands over the inputs received since the last call without
// blocking.
type InputSource interface {
	Inputs() []Input
}

// Frontend is everything Run needs from the terminal.
type Frontend interface {
	Display
	InputSource
	Screens
}
