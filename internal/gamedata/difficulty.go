package gamedata

import "fmt"

// Difficulty is one of the fixed difficulty presets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Player baseline stats shared by every difficulty.
const (
	StartingHealth = 100
	DefaultAttack  = 20
	DefaultDefense = 0
	DefaultSpells  = 1
)

// Boss stats. Boss health depends on difficulty, see Preset.BossHealth.
const (
	BossName   = "Mad King Baramour"
	BossArt    = "madking"
	BossAttack = 40
)

// Preset holds everything a difficulty changes.
type Preset struct {
	Difficulty    Difficulty
	StartingLevel int     // Depth the player starts at
	HealthScale   float64 // Multiplier applied to enemy HP at spawn
	RunChance     float64 // Probability a flee attempt succeeds
	BossHealth    int
}

// Presets lists the difficulties in the order the welcome screen cycles them.
var Presets = []Preset{
	{Difficulty: Easy, StartingLevel: 20, HealthScale: 1.0, RunChance: 0.6, BossHealth: 100},
	{Difficulty: Medium, StartingLevel: 50, HealthScale: 1.5, RunChance: 0.4, BossHealth: 150},
	{Difficulty: Hard, StartingLevel: 100, HealthScale: 2.0, RunChance: 0.2, BossHealth: 200},
}

// PresetFor returns the preset for d.
func PresetFor(d Difficulty) (Preset, error) {
	for _, p := range Presets {
		if p.Difficulty == d {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown difficulty %d", int(d))
}

// MustPresetFor returns the preset for d, falling back to Medium for
// unknown values.
func MustPresetFor(d Difficulty) Preset {
	p, err := PresetFor(d)
	if err != nil {
		return Presets[1]
	}
	return p
}

// Next returns the difficulty after d in cycle order.
func (d Difficulty) Next() Difficulty {
	for i, p := range Presets {
		if p.Difficulty == d {
			return Presets[(i+1)%len(Presets)].Difficulty
		}
	}
	return Presets[0].Difficulty
}
