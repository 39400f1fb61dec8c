package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/samdwyer/escapecastle/internal/game"
	"github.com/samdwyer/escapecastle/internal/gamedata"
	"github.com/samdwyer/escapecastle/internal/logger"
)

// Layout.
const (
	margin       = 2
	minLogHeight = 6
)

var (
	artStyle         = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	placeholderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	logStyle         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	statusStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	instructionStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	dividerStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// ArtSource looks up art rows by key.
type ArtSource func(key string) ([]string, bool)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	art    ArtSource

	mu      sync.Mutex
	missing map[string]bool
}

// NewRenderer creates a new renderer for the given screen using the
// embedded art.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		art:     gamedata.Art,
		missing: make(map[string]bool),
	}
}

// Render draws one frame: the junction art with the enemy over it, the log,
// the player status and the key help.
func (r *Renderer) Render(f game.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	logHeight := h / 3
	if logHeight < minLogHeight {
		logHeight = minLogHeight
	}
	artHeight := h - logHeight - 3
	if artHeight < 0 {
		artHeight = 0
	}

	r.drawBackground(f, w, artHeight)
	r.drawEnemy(f, w, artHeight)

	divider := artHeight
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, divider, '─', dividerStyle)
	}
	r.drawLog(f.Log, margin, divider+1, w-2*margin, logHeight)

	r.screen.PutText(margin, h-2, StatusLine(f.Status), statusStyle)
	r.screen.PutText(margin, h-1, runewidth.Truncate(f.Instruction, w-2*margin, "…"), instructionStyle)

	r.screen.Show()
}

// StatusLine formats the player summary.
func StatusLine(s game.Status) string {
	return fmt.Sprintf("Name: %s | Health: %d/%d | Level: %d | Spells: %d",
		s.Name, s.Health, s.MaxHealth, s.Level, s.Spells)
}

func (r *Renderer) drawBackground(f game.Frame, w, h int) {
	rows, ok := r.lookup(f.VariantArt)
	if !ok {
		r.screen.PutCentered(h/2, fmt.Sprintf("Level %d | No Image Found", f.Status.Level), placeholderStyle)
		return
	}
	r.drawArt(rows, w, h, f.Background, artStyle)
}

func (r *Renderer) drawEnemy(f game.Frame, w, h int) {
	if f.EnemyArt == "" || f.EnemyAlpha <= 0 {
		return
	}
	rows, ok := r.lookup(f.EnemyArt)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(gamedata.Dim(f.EnemyColor, f.EnemyAlpha)).Bold(true)
	r.drawArt(rows, w, h, f.EnemyShake, style)
}

// drawArt centers rows in a w by h panel, shifted by off. Spaces are
// transparent so enemies can stand in front of the junction.
func (r *Renderer) drawArt(rows []string, w, h int, off game.Offset, style tcell.Style) {
	artW := 0
	for _, row := range rows {
		if rw := runewidth.StringWidth(row); rw > artW {
			artW = rw
		}
	}
	x0 := (w-artW)/2 + off.X
	y0 := (h-len(rows))/2 + off.Y
	for i, row := range rows {
		y := y0 + i
		if y < 0 || y >= h {
			continue
		}
		x := x0
		for _, ch := range row {
			rw := runewidth.RuneWidth(ch)
			if rw == 0 {
				continue
			}
			if ch != ' ' && x >= 0 && x+rw <= w {
				r.screen.SetContent(x, y, ch, style)
			}
			x += rw
		}
	}
}

// drawLog wraps the log to width and shows its last height rows.
func (r *Renderer) drawLog(lines []string, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	rows := WrapLog(lines, width)
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	for i, row := range rows {
		r.screen.PutText(x, y+i, row, logStyle)
	}
}

// WrapLog word-wraps each log line to width. Empty lines are kept.
func WrapLog(lines []string, width int) []string {
	var rows []string
	for _, l := range lines {
		if l == "" {
			rows = append(rows, "")
			continue
		}
		wrapped := wordwrap.String(l, width)
		for _, row := range strings.Split(wrapped, "\n") {
			rows = append(rows, runewidth.Truncate(row, width, ""))
		}
	}
	return rows
}

// lookup fetches art, logging each missing key once.
func (r *Renderer) lookup(key string) ([]string, bool) {
	if key == "" {
		return nil, false
	}
	rows, ok := r.art(key)
	if ok {
		return rows, true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.missing[key] {
		r.missing[key] = true
		logger.Log.WithField("art", key).Warn("art not found")
	}
	return nil, false
}
