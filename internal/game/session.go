package game

import (
	"github.com/samdwyer/escapecastle/internal/combat"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/timing"
	"github.com/samdwyer/escapecastle/internal/world"
)

// Session is the mutable state of one run, owned by the Game.
type Session struct {
	Player  *entity.Player
	Choices []world.Choice

	// Combat is the encounter in progress, nil between fights.
	Combat *combat.Controller
	// Fade animates the enemy art; it outlives Combat while fading out.
	Fade combat.Fade

	// Dwell holds the log on screen; it is running only while waiting.
	Dwell timing.Timer

	// Encounters counts fights started, the boss included.
	Encounters int
}

// NewSession starts a run for p.
func NewSession(p *entity.Player) *Session {
	return &Session{Player: p}
}

// Enemy returns the enemy being fought, or nil.
func (s *Session) Enemy() *entity.Enemy {
	if s.Combat == nil {
		return nil
	}
	return s.Combat.Enemy()
}

// EndEncounter drops the controller and fades the enemy art out.
func (s *Session) EndEncounter() {
	s.Combat = nil
	s.Fade.Out()
}
