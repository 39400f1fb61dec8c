package game

import "github.com/gdamore/tcell/v2"

// Shake offsets.
const (
	BackgroundShake = 10
	EnemyShake      = 5
)

// Status is the player summary shown under the log.
type Status struct {
	Name       string
	Difficulty string
	Health     int
	MaxHealth  int
	Level      int
	Spells     int
}

// Offset is a shake displacement in cells.
type Offset struct {
	X, Y int
}

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	State       State
	Log         []string
	Status      Status
	Instruction string

	// VariantArt is the art key of the current junction, empty if none.
	VariantArt string
	Background Offset

	// EnemyArt is empty when no enemy is on screen.
	EnemyArt   string
	EnemyAlpha int
	EnemyColor tcell.Color
	EnemyShake Offset
}
