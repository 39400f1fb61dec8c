package combat

import (
	"fmt"
	"strings"
	"time"

	"github.com/samdwyer/escapecastle/internal/dice"
	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/timing"
)

// Flee bands: a roll below the run chance escapes, a roll below
// run chance + FleeBlockedBand is blocked harmlessly, anything else is
// blocked and struck.
const FleeBlockedBand = 0.3

// Phase is the current step of an encounter.
type Phase int

const (
	// PhaseIdle - waiting for the player to act
	PhaseIdle Phase = iota
	// PhasePlayerActing - the player's hit is playing out
	PhasePlayerActing
	// PhaseEnemyActing - the enemy's counter is playing out
	PhaseEnemyActing
	// PhaseVictory - the enemy is dead
	PhaseVictory
	// PhaseDefeat - the player is dead
	PhaseDefeat
	// PhaseFled - the player escaped
	PhaseFled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerActing:
		return "player_acting"
	case PhaseEnemyActing:
		return "enemy_acting"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the encounter is over.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}

// Kind distinguishes hallway monsters from the Mad King.
type Kind int

const (
	KindRegular Kind = iota
	KindBoss
)

func (k Kind) String() string {
	if k == KindBoss {
		return "boss"
	}
	return "regular"
}

// Durations are how long each acting phase lasts.
type Durations struct {
	Attack  time.Duration
	Spell   time.Duration
	Counter time.Duration
}

var (
	// RegularDurations apply to hallway monsters.
	RegularDurations = Durations{
		Attack:  1500 * time.Millisecond,
		Spell:   1500 * time.Millisecond,
		Counter: 500 * time.Millisecond,
	}
	// BossDurations apply to the Mad King.
	BossDurations = Durations{
		Attack:  600 * time.Millisecond,
		Spell:   300 * time.Millisecond,
		Counter: 600 * time.Millisecond,
	}
)

// DurationsFor returns the phase durations for an encounter kind.
func DurationsFor(k Kind) Durations {
	if k == KindBoss {
		return BossDurations
	}
	return RegularDurations
}

// Controller is the phase state machine for one encounter. Actions are only
// accepted while idle; anything else is dropped. Every method that changes
// the fight returns the log lines it produced.
type Controller struct {
	kind      Kind
	player    *entity.Player
	enemy     *entity.Enemy
	rng       dice.Rand
	runChance float64
	durations Durations

	phase Phase
	timer timing.Timer
}

// NewController starts an encounter in the idle phase.
func NewController(kind Kind, player *entity.Player, enemy *entity.Enemy, rng dice.Rand, runChance float64) *Controller {
	return &Controller{
		kind:      kind,
		player:    player,
		enemy:     enemy,
		rng:       rng,
		runChance: runChance,
		durations: DurationsFor(kind),
		phase:     PhaseIdle,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Kind returns the encounter kind.
func (c *Controller) Kind() Kind { return c.kind }

// Enemy returns the enemy being fought.
func (c *Controller) Enemy() *entity.Enemy { return c.enemy }

// Timer returns the running phase timer.
func (c *Controller) Timer() timing.Timer { return c.timer }

// IsPlayerAttacking reports whether the player's hit is playing out.
func (c *Controller) IsPlayerAttacking() bool { return c.phase == PhasePlayerActing }

// IsEnemyAttacking reports whether the enemy's counter is playing out.
func (c *Controller) IsEnemyAttacking() bool { return c.phase == PhaseEnemyActing }

// Done reports whether the encounter has ended.
func (c *Controller) Done() bool { return c.phase.Terminal() }

func (c *Controller) targetName() string {
	if c.kind == KindBoss {
		return "the Mad King"
	}
	return c.enemy.Name
}

// Attack hits the enemy with a weapon.
func (c *Controller) Attack(now time.Time) []string {
	if c.phase != PhaseIdle {
		return nil
	}
	dmg := AttackDamage(c.rng, c.player.Attack)
	c.enemy.TakeDamage(dmg)
	c.enter(PhasePlayerActing, now, c.durations.Attack)
	return []string{fmt.Sprintf("You attack %s for %d damage!", c.targetName(), dmg)}
}

// CastSpell spends a spell on the enemy. With no spells left it only logs.
func (c *Controller) CastSpell(now time.Time) []string {
	if c.phase != PhaseIdle {
		return nil
	}
	if !c.player.SpendSpell() {
		return []string{"You have no spells left!"}
	}
	dmg := SpellDamage(c.rng, c.player.Attack)
	c.enemy.TakeDamage(dmg)
	c.enter(PhasePlayerActing, now, c.durations.Spell)
	return []string{fmt.Sprintf("You unleash a spell on %s for %d damage!", c.targetName(), dmg)}
}

// Flee tries to run. The Mad King cannot be fled.
func (c *Controller) Flee(now time.Time) []string {
	if c.phase != PhaseIdle {
		return nil
	}
	if c.kind == KindBoss {
		return []string{"You cannot run from the Mad King!"}
	}

	roll := c.rng.Float64()
	switch {
	case roll < c.runChance:
		c.phase = PhaseFled
		c.timer.Stop()
		return []string{"You attempt to run away and succeed!"}
	case roll < c.runChance+FleeBlockedBand:
		return []string{"You attempt to run away but are blocked! You must stay and fight."}
	default:
		taken := c.player.TakeDamage(CounterDamage(c.rng, c.enemy.Attack))
		lines := []string{
			"You attempt to run away but are blocked and struck down by the enemy!",
			fmt.Sprintf("The %s deals %d damage while you try to flee!", c.enemy.Name, taken),
		}
		if !c.player.IsAlive() {
			c.phase = PhaseDefeat
			lines = append(lines, "You have been defeated... Game Over.")
		}
		return lines
	}
}

// Advance moves the fight along. Victory is checked first, then the acting
// phases are completed once their timers run out.
func (c *Controller) Advance(now time.Time) []string {
	var lines []string

	if c.phase == PhaseIdle && !c.enemy.IsAlive() {
		c.phase = PhaseVictory
		return []string{
			fmt.Sprintf("You have defeated %s!", c.enemy.Name),
			"You may now continue.",
		}
	}

	if c.phase == PhasePlayerActing && c.timer.Elapsed(now) {
		if c.enemy.IsAlive() {
			c.enter(PhaseEnemyActing, now, c.durations.Counter)
			taken := c.player.TakeDamage(CounterDamage(c.rng, c.enemy.Attack))
			lines = append(lines, c.counterLine(taken))
		} else {
			c.phase = PhaseIdle
			c.timer.Stop()
		}
	}

	if c.phase == PhaseEnemyActing && c.timer.Elapsed(now) {
		c.phase = PhaseIdle
		c.timer.Stop()
		if !c.player.IsAlive() {
			c.phase = PhaseDefeat
			if c.kind == KindRegular {
				lines = append(lines, "You have been defeated... Game Over.")
			}
		}
	}

	return lines
}

func (c *Controller) counterLine(taken int) string {
	if c.kind == KindBoss {
		return fmt.Sprintf("The Mad King strikes you for %d damage!", taken)
	}
	return fmt.Sprintf("%s attacks you for %d damage!", capitalize(c.enemy.Name), taken)
}

func (c *Controller) enter(p Phase, now time.Time, d time.Duration) {
	c.phase = p
	c.timer = timing.NewTimer(now, d)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
