// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateWelcome is the greeting typed out before the first junction.
	StateWelcome State = iota
	// StateChoosing is a junction waiting for the player to pick a passage.
	StateChoosing
	// StateNarrating is the result of a passage being typed out.
	StateNarrating
	// StateBattle is a fight with a hallway monster.
	StateBattle
	// StateDwell holds the log on screen before the next junction.
	StateDwell
	// StateBoss is the fight with the Mad King.
	StateBoss
	// StateOver means the run has ended in victory or defeat.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateChoosing:
		return "choosing"
	case StateNarrating:
		return "narrating"
	case StateBattle:
		return "battle"
	case StateDwell:
		return "dwell"
	case StateBoss:
		return "boss"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Fighting reports whether an encounter is in progress.
func (s State) Fighting() bool {
	return s == StateBattle || s == StateBoss
}
