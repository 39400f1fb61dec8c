package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/escapecastle/internal/gamedata"
)

// Enemy is a monster met in a hallway, or the king himself.
type Enemy struct {
	Def    *gamedata.EnemyDef // Archetype the enemy was spawned from (nil for the boss)
	Name   string
	Health int
	Attack int
	Boss   bool
}

// NewEnemyFromDef spawns an enemy from its archetype with health scaled by
// the difficulty multiplier. Scaled health is truncated, never below 1.
func NewEnemyFromDef(def *gamedata.EnemyDef, healthScale float64) *Enemy {
	health := int(float64(def.HP) * healthScale)
	if health < 1 {
		health = 1
	}
	return &Enemy{
		Def:    def,
		Name:   def.Name,
		Health: health,
		Attack: def.Attack,
	}
}

// NewBoss creates the Mad King for the given difficulty.
func NewBoss(preset gamedata.Preset) *Enemy {
	return &Enemy{
		Name:   gamedata.BossName,
		Health: preset.BossHealth,
		Attack: gamedata.BossAttack,
		Boss:   true,
	}
}

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage reduces health, never below zero, and returns the damage
// actually taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

// ArtKey returns the key of the enemy's art.
func (e *Enemy) ArtKey() string {
	if e.Boss {
		return gamedata.BossArt
	}
	return gamedata.Slug(e.Name)
}

// Color returns the tcell color for this enemy's art.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorGold
}
