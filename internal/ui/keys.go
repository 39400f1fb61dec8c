package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/escapecastle/internal/game"
)

// KeyToInput maps a key press to a game input.
func KeyToInput(ev *tcell.EventKey) game.Input {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.InputPause
	case tcell.KeyCtrlC:
		return game.InputQuit
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'a', 'A':
			return game.InputAttack
		case 's', 'S':
			return game.InputSpell
		case 'r', 'R':
			return game.InputFlee
		}
		if r >= '0' && r <= '9' {
			return game.Digit(int(r - '0'))
		}
	}
	return game.InputNone
}
