// Package typewriter reveals the game log one character at a time.
package typewriter

import (
	"time"
	"unicode/utf8"
)

// DefaultDelay is the time between revealed characters.
const DefaultDelay = 50 * time.Millisecond

// lineGap is how many cursor steps the break between two lines costs. It is
// never drawn; it only paces the reveal.
const lineGap = 2

// Mode says what the typewriter is revealing.
type Mode int

const (
	// ModeIdle - everything is shown, nothing is being typed
	ModeIdle Mode = iota
	// ModeWelcome - the welcome greeting
	ModeWelcome
	// ModeChoices - a junction, narration, or invalid-choice message
	ModeChoices
	// ModeCombat - an encounter log
	ModeCombat
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWelcome:
		return "welcome"
	case ModeChoices:
		return "choices"
	case ModeCombat:
		return "combat"
	default:
		return "unknown"
	}
}

// Typewriter holds the log buffer and the reveal cursor. The cursor counts
// runes across all lines plus a fixed gap between lines; it only moves
// forward and never passes the total.
type Typewriter struct {
	delay  time.Duration
	mode   Mode
	lines  []string
	cursor int
	last   time.Time
}

// New creates an idle typewriter. A non-positive delay uses DefaultDelay.
func New(delay time.Duration) *Typewriter {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Typewriter{delay: delay}
}

// Start replaces the buffer and begins revealing it from the first character.
func (t *Typewriter) Start(mode Mode, lines []string, now time.Time) {
	t.mode = mode
	t.lines = append([]string(nil), lines...)
	t.cursor = 0
	t.last = now
	if mode == ModeIdle {
		t.cursor = t.Total()
	}
}

// Show replaces the buffer and displays it whole.
func (t *Typewriter) Show(lines []string) {
	t.Start(ModeIdle, lines, t.last)
}

// Push appends a line. While revealing, the new line is typed after the
// rest; when idle it shows at once.
func (t *Typewriter) Push(lines ...string) {
	t.lines = append(t.lines, lines...)
	if t.mode == ModeIdle {
		t.cursor = t.Total()
	}
}

// Update reveals at most one character if the delay has passed since the
// last one. It returns true on the call that finishes the reveal, after
// which the typewriter is idle.
func (t *Typewriter) Update(now time.Time) bool {
	if t.mode == ModeIdle {
		return false
	}
	total := t.Total()
	if t.cursor < total && now.Sub(t.last) >= t.delay {
		t.cursor++
		t.last = now
	}
	if t.cursor >= total {
		t.mode = ModeIdle
		return true
	}
	return false
}

// Mode returns what is being revealed.
func (t *Typewriter) Mode() Mode { return t.mode }

// Revealing reports whether characters are still being typed.
func (t *Typewriter) Revealing() bool { return t.mode != ModeIdle }

// Cursor returns the reveal position.
func (t *Typewriter) Cursor() int { return t.cursor }

// Lines returns the whole buffer.
func (t *Typewriter) Lines() []string { return t.lines }

// Total returns the cursor position at which the buffer is fully revealed.
func (t *Typewriter) Total() int {
	if len(t.lines) == 0 {
		return 0
	}
	n := (len(t.lines) - 1) * lineGap
	for _, l := range t.lines {
		n += utf8.RuneCountInString(l)
	}
	return n
}

// Visible returns the lines revealed so far: every line that fits wholly
// under the cursor, then the revealed part of the next one.
func (t *Typewriter) Visible() []string {
	if t.mode == ModeIdle {
		return append([]string(nil), t.lines...)
	}
	var out []string
	count := 0
	for _, l := range t.lines {
		n := utf8.RuneCountInString(l)
		if count+n <= t.cursor {
			out = append(out, l)
			count += n + lineGap
			continue
		}
		if rest := t.cursor - count; rest > 0 {
			out = append(out, string([]rune(l)[:rest]))
		}
		break
	}
	return out
}
