// Package combat runs timed one-on-one encounters between the player and a
// single enemy.
package combat

import "github.com/samdwyer/escapecastle/internal/dice"

// Damage tuning shared by every encounter.
const (
	MinAttackDamage = 10
	SpellBonusMin   = 20
	SpellBonusMax   = 40
	AttackVariance  = 5
)

// AttackDamage rolls a plain weapon attack in [MinAttackDamage, attack].
func AttackDamage(r dice.Rand, attack int) int {
	return dice.Range(r, MinAttackDamage, attack)
}

// SpellDamage rolls a spell in [attack+SpellBonusMin, attack+SpellBonusMax].
func SpellDamage(r dice.Rand, attack int) int {
	return dice.Range(r, attack+SpellBonusMin, attack+SpellBonusMax)
}

// CounterDamage rolls an enemy strike in [attack-AttackVariance,
// attack+AttackVariance], never negative.
func CounterDamage(r dice.Rand, attack int) int {
	return dice.Spread(r, attack, AttackVariance)
}

// ShakeOffset returns a random offset in [-magnitude, magnitude].
func ShakeOffset(r dice.Rand, magnitude int) int {
	return dice.Range(r, -magnitude, magnitude)
}
