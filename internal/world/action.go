// Package world provides junction navigation and the encounters behind each
// passage.
package world

import "fmt"

// Action is what lies behind a passage.
type Action int

const (
	// ActionStairsDown leads one level deeper, away from the king.
	ActionStairsDown Action = iota
	// ActionStairsUp leads one level up, toward the king.
	ActionStairsUp
	// ActionDoor opens onto a treasure chest.
	ActionDoor
	// ActionHall leads into a hallway with a monster in it.
	ActionHall
)

// ParseAction converts a content-table tag into an Action.
func ParseAction(tag string) (Action, error) {
	switch tag {
	case "stairs_down":
		return ActionStairsDown, nil
	case "stairs_up":
		return ActionStairsUp, nil
	case "door":
		return ActionDoor, nil
	case "hall":
		return ActionHall, nil
	default:
		return 0, fmt.Errorf("unknown passage action %q", tag)
	}
}

// String returns the content-table tag for the action.
func (a Action) String() string {
	switch a {
	case ActionStairsDown:
		return "stairs_down"
	case ActionStairsUp:
		return "stairs_up"
	case ActionDoor:
		return "door"
	case ActionHall:
		return "hall"
	default:
		return "unknown"
	}
}

// Phrase describes the passage as seen from the junction.
func (a Action) Phrase() string {
	switch a {
	case ActionStairsDown:
		return "An archway with a set of stairs going down to the previous level"
	case ActionStairsUp:
		return "An archway with a set of stairs going up to the next level"
	case ActionDoor:
		return "An archway with a door"
	case ActionHall:
		return "An archway with a hallway"
	default:
		return "An unknown path"
	}
}

// Wall is the position of a passage in the junction.
type Wall int

const (
	WallLeft Wall = iota
	WallCenter
	WallRight
)

// Phrase places the passage in the room.
func (w Wall) Phrase() string {
	switch w {
	case WallLeft:
		return "on the left wall"
	case WallCenter:
		return "on the wall facing you"
	case WallRight:
		return "to the right wall"
	default:
		return "somewhere in the dark"
	}
}
