package world

import (
	"fmt"

	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/gamedata"
)

// Chest loot tuning.
const (
	HealChance = 0.7
	HealMin    = 10
	HealMax    = 30
)

// OutcomeKind says what the driver should do after a choice resolves.
type OutcomeKind int

const (
	// OutcomeContinue means narrate the lines, then offer the next junction.
	OutcomeContinue OutcomeKind = iota
	// OutcomeBattle means a monster blocks the way.
	OutcomeBattle
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// Outcome is the result of walking through a passage.
type Outcome struct {
	Kind  OutcomeKind
	Enemy *entity.Enemy // Set only for OutcomeBattle
	Lines []string
}

// Resolver applies the effect of a chosen passage to the player.
type Resolver struct {
	enemies *gamedata.EnemyRegistry
	rng     dice.Rand
}

// NewResolver creates a resolver spawning monsters from enemies.
func NewResolver(enemies *gamedata.EnemyRegistry, rng dice.Rand) *Resolver {
	return &Resolver{enemies: enemies, rng: rng}
}

// Resolve walks the player through the chosen passage. Only the player and
// any newly spawned enemy are modified.
func (r *Resolver) Resolve(p *entity.Player, c Choice) Outcome {
	switch c.Action {
	case ActionHall:
		return r.hall(p)
	case ActionDoor:
		return r.door(p)
	case ActionStairsUp:
		p.Level--
		return Outcome{
			Kind:  OutcomeContinue,
			Lines: []string{fmt.Sprintf("You climb the stairs. You are now on level %d.", p.Level)},
		}
	case ActionStairsDown:
		p.Level++
		return Outcome{
			Kind:  OutcomeContinue,
			Lines: []string{fmt.Sprintf("You descend the stairs. You are now on level %d.", p.Level)},
		}
	default:
		return Outcome{Kind: OutcomeContinue}
	}
}

func (r *Resolver) hall(p *entity.Player) Outcome {
	def := r.enemies.SpawnRandom(r.rng)
	if def == nil {
		return Outcome{
			Kind:  OutcomeContinue,
			Lines: []string{"You cautiously enter the hallway, but it is empty."},
		}
	}
	enemy := entity.NewEnemyFromDef(def, gamedata.MustPresetFor(p.Difficulty).HealthScale)
	return Outcome{
		Kind:  OutcomeBattle,
		Enemy: enemy,
		Lines: []string{fmt.Sprintf("You cautiously enter the hallway and encounter %s!", enemy.Name)},
	}
}

func (r *Resolver) door(p *entity.Player) Outcome {
	lines := []string{"You open the door and find a dusty treasure chest!"}
	if dice.Chance(r.rng, HealChance) {
		amount := dice.Range(r.rng, HealMin, HealMax)
		p.Heal(amount)
		lines = append(lines, fmt.Sprintf("You found a potion and healed for %d health!", amount))
	} else {
		p.Spells++
		lines = append(lines, "You found a scroll with a new spell!")
	}
	return Outcome{Kind: OutcomeContinue, Lines: lines}
}
