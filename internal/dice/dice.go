// Package dice provides the inclusive random ranges and probability checks
// used by navigation and combat.
package dice

// Rand is the subset of *math/rand.Rand the game draws from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Range returns a uniform integer in [lo, hi], both bounds inclusive.
// If hi < lo the result is lo.
func Range(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Spread returns a uniform integer in [center-variance, center+variance],
// clamped so it is never negative.
func Spread(r Rand, center, variance int) int {
	n := Range(r, center-variance, center+variance)
	if n < 0 {
		return 0
	}
	return n
}

// Chance reports whether a uniform roll in [0, 1) falls below p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
