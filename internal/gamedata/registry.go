package gamedata

import (
	"errors"

	"github.com/samdwyer/escapecastle/internal/dice"
)

// ErrEmptyTable is returned when a content table loads but holds no rows.
var ErrEmptyTable = errors.New("content table is empty")

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
// Definitions without a positive spawn weight count as weight 1.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for i := range enemies {
		if enemies[i].SpawnWeight <= 0 {
			enemies[i].SpawnWeight = 1
		}
		totalWeight += enemies[i].SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, ErrEmptyTable
	}
	return NewEnemyRegistry(enemies), nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
// With equal weights every archetype is equally likely.
func (r *EnemyRegistry) SpawnRandom(rng dice.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}
