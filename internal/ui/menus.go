package ui

import (
	"context"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/game"
	"github.com/samdwyer/escapecastle/internal/gamedata"
)

const maxNameLength = 20

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	errorStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var introLines = []string{
	"You awaken in the depths of a forgotten dungeon, the air damp and heavy with despair.",
	"Before you lies the lifeless body of a guard, his keys scattered on the stone floor",
	"and a rusted sword resting beside him.",
	"",
	"This cursed fortress belongs to the tyrant King Baramour.",
	"To claim your freedom you must climb through the dungeon's perilous halls",
	"and confront the king himself.",
	"",
	"- Navigate the castle by selecting one of the available paths.",
	"- Beware: each choice may conceal an ambush.",
	"- Discover hidden chests to find potions and scrolls.",
	"- Press 'ESC' to pause the game.",
}

type option struct {
	label  string
	action game.MenuAction
}

// Menus runs the modal screens. Each one blocks on the screen's event queue
// until the player picks an option.
type Menus struct {
	screen *Screen
}

// NewMenus creates the menus for screen.
func NewMenus(screen *Screen) *Menus {
	return &Menus{screen: screen}
}

// Title shows the main menu. It returns MenuStart or MenuExit.
func (m *Menus) Title(ctx context.Context) game.MenuAction {
	return m.choose(ctx, []string{"Escape the Castle"}, nil, []option{
		{"Start Adventure", game.MenuStart},
		{"Exit Game", game.MenuExit},
	}, game.MenuExit, game.MenuExit)
}

// Pause shows the in-game menu. ESC resumes.
func (m *Menus) Pause(ctx context.Context) game.MenuAction {
	return m.choose(ctx, []string{"Game Paused"}, nil, []option{
		{"Return to game", game.MenuContinue},
		{"Exit to Main Menu", game.MenuExitMainMenu},
		{"Exit Game", game.MenuExitGame},
	}, game.MenuContinue, game.MenuExitGame)
}

// GameOver shows the defeat screen.
func (m *Menus) GameOver(ctx context.Context) game.MenuAction {
	return m.choose(ctx, []string{"Game Over", "", "You have been defeated..."}, nil, []option{
		{"Try Again", game.MenuRetry},
		{"Exit to Menu", game.MenuExitMainMenu},
		{"Quit Game", game.MenuExitGame},
	}, game.MenuExitGame, game.MenuExitGame)
}

// Victory shows the final stats after the Mad King falls.
func (m *Menus) Victory(ctx context.Context, p *entity.Player) game.MenuAction {
	stats := []string{
		"Hero: " + p.Name,
		"Difficulty: " + p.Difficulty.String(),
		fmt.Sprintf("Remaining Health: %d/%d", p.Health, p.MaxHealth),
		fmt.Sprintf("Spells Left: %d", p.Spells),
	}
	return m.choose(ctx, []string{"Victory!", "", "You defeated the Mad King Baramour!"}, stats, []option{
		{"Play Again", game.MenuReplay},
		{"Exit to Main Menu", game.MenuExitMainMenu},
		{"Exit Game", game.MenuExit},
	}, game.MenuExit, game.MenuExit)
}

// choose draws a vertical menu and waits for a pick. Up and down move the
// highlight, Enter picks it, digits pick directly. esc is returned on ESC,
// closed is returned when the context ends or the event queue closes.
func (m *Menus) choose(ctx context.Context, header, body []string, opts []option, esc, closed game.MenuAction) game.MenuAction {
	selected := 0
	for {
		m.drawMenu(header, body, opts, selected)

		ev, ok := m.next(ctx)
		if !ok {
			return closed
		}
		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		switch key.Key() {
		case tcell.KeyUp, tcell.KeyBacktab:
			selected = (selected + len(opts) - 1) % len(opts)
		case tcell.KeyDown, tcell.KeyTab:
			selected = (selected + 1) % len(opts)
		case tcell.KeyEnter:
			return opts[selected].action
		case tcell.KeyEscape:
			return esc
		case tcell.KeyCtrlC:
			return closed
		case tcell.KeyRune:
			if r := key.Rune(); r >= '1' && int(r-'0') <= len(opts) {
				return opts[r-'1'].action
			}
		}
	}
}

// next waits for the next terminal event. Resizes are handled here.
func (m *Menus) next(ctx context.Context) (tcell.Event, bool) {
	select {
	case <-ctx.Done():
		return nil, false
	case ev, ok := <-m.screen.Events():
		if !ok {
			return nil, false
		}
		if _, resize := ev.(*tcell.EventResize); resize {
			m.screen.Sync()
		}
		return ev, true
	}
}

func (m *Menus) drawMenu(header, body []string, opts []option, selected int) {
	m.screen.Clear()
	_, h := m.screen.Size()

	total := len(header) + len(body) + len(opts)*2 + 2
	y := (h - total) / 2
	if y < 0 {
		y = 0
	}
	for i, line := range header {
		style := textStyle
		if i == 0 {
			style = titleStyle
		}
		m.screen.PutCentered(y, line, style)
		y++
	}
	y++
	for _, line := range body {
		m.screen.PutCentered(y, line, titleStyle)
		y++
	}
	y++
	for i, o := range opts {
		label := fmt.Sprintf("[%d] %s", i+1, o.label)
		style := textStyle
		if i == selected {
			style = selectedStyle
			label = "> " + label + " <"
		}
		m.screen.PutCentered(y, label, style)
		y += 2
	}
	m.screen.Show()
}

// WelcomeResult is what the welcome screen collects.
type WelcomeResult struct {
	Name          string
	Difficulty    gamedata.Difficulty
	StartingLevel int
}

type welcomeField int

const (
	fieldName welcomeField = iota
	fieldDifficulty
	fieldStart
	fieldCount
)

// Welcome tells the story and asks for a name and difficulty. It returns
// MenuStart with the result, or MenuExit.
func (m *Menus) Welcome(ctx context.Context) (WelcomeResult, game.MenuAction) {
	var (
		name  []rune
		focus = fieldName
		diff  = gamedata.Medium
		msg   string
	)
	for {
		m.drawWelcome(string(name), diff, focus, msg)

		ev, ok := m.next(ctx)
		if !ok {
			return WelcomeResult{}, game.MenuExit
		}
		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			continue
		}
		switch key.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return WelcomeResult{}, game.MenuExit
		case tcell.KeyUp, tcell.KeyBacktab:
			focus = (focus + fieldCount - 1) % fieldCount
		case tcell.KeyDown, tcell.KeyTab:
			focus = (focus + 1) % fieldCount
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if focus == fieldName && len(name) > 0 {
				name = name[:len(name)-1]
			}
		case tcell.KeyLeft, tcell.KeyRight:
			if focus == fieldDifficulty {
				diff = diff.Next()
			}
		case tcell.KeyEnter:
			if focus == fieldDifficulty {
				diff = diff.Next()
				continue
			}
			if len(name) == 0 {
				msg = "Please enter a name first."
				focus = fieldName
				continue
			}
			return WelcomeResult{
				Name:          string(name),
				Difficulty:    diff,
				StartingLevel: gamedata.MustPresetFor(diff).StartingLevel,
			}, game.MenuStart
		case tcell.KeyRune:
			r := key.Rune()
			if focus == fieldName && unicode.IsPrint(r) && len(name) < maxNameLength {
				name = append(name, r)
				msg = ""
			}
		}
	}
}

func (m *Menus) drawWelcome(name string, diff gamedata.Difficulty, focus welcomeField, msg string) {
	m.screen.Clear()
	w, h := m.screen.Size()

	y := 1
	m.screen.PutCentered(y, "Escape the Castle", titleStyle)
	y += 2
	for _, line := range introLines {
		if y >= h-8 {
			break
		}
		m.screen.PutCentered(y, runewidth.Truncate(line, w-2, "…"), textStyle)
		y++
	}
	y++

	field := func(f welcomeField, label string) {
		style := textStyle
		if f == focus {
			style = selectedStyle
		}
		m.screen.PutCentered(y, label, style)
		y += 2
	}
	cursor := ""
	if focus == fieldName {
		cursor = "_"
	}
	field(fieldName, "Name: "+name+cursor)
	field(fieldDifficulty, "Difficulty: "+diff.String())
	field(fieldStart, "Start Adventure")
	if msg != "" {
		m.screen.PutCentered(y, msg, errorStyle)
	}
	m.screen.Show()
}
