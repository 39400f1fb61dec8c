// Package entity provides the player and the monsters they fight.
package entity

import (
	"fmt"

	"github.com/samdwyer/escapecastle/internal/gamedata"
)

// Player is the adventurer climbing out of the castle.
type Player struct {
	Name       string
	Difficulty gamedata.Difficulty

	Health    int
	MaxHealth int
	Attack    int
	Defense   int // Tracked but not used by any damage formula
	Spells    int

	Level         int // Dungeon depth; lower is closer to the king
	StartingLevel int

	// CurrentVariant is the junction layout on display, nil before the
	// first junction or when no layouts are loaded.
	CurrentVariant *gamedata.Variant
}

// NewPlayer creates a player with the baseline stats.
func NewPlayer(name string, difficulty gamedata.Difficulty, startingLevel int) *Player {
	return &Player{
		Name:          name,
		Difficulty:    difficulty,
		Health:        gamedata.StartingHealth,
		MaxHealth:     gamedata.StartingHealth,
		Attack:        gamedata.DefaultAttack,
		Defense:       gamedata.DefaultDefense,
		Spells:        gamedata.DefaultSpells,
		Level:         startingLevel,
		StartingLevel: startingLevel,
	}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health, never below zero, and returns the damage
// actually taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health. Healing past the current maximum raises the maximum
// to match, so MaxHealth only ever grows.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.MaxHealth = p.Health
	}
}

// SpendSpell consumes one spell. It returns false when none are left.
func (p *Player) SpendSpell() bool {
	if p.Spells <= 0 {
		return false
	}
	p.Spells--
	return true
}

// Status returns a one-line summary of the player.
func (p *Player) Status() string {
	return fmt.Sprintf("Name: %s | Health: %d/%d | Level: %d | Spells: %d",
		p.Name, p.Health, p.MaxHealth, p.Level, p.Spells)
}
