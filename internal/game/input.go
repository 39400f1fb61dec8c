package game

// Input is a key press already mapped to its meaning.
type Input int

const (
	InputNone Input = iota
	InputPause
	InputQuit
	InputAttack
	InputSpell
	InputFlee
	// InputDigit0 is the digit 0; InputDigit0+n is the digit n.
	InputDigit0
)

// Digit returns the input for the digit n (0-9).
func Digit(n int) Input {
	if n < 0 || n > 9 {
		return InputNone
	}
	return InputDigit0 + Input(n)
}

// Digit reports the digit an input carries.
func (in Input) Digit() (int, bool) {
	if in < InputDigit0 || in > InputDigit0+9 {
		return 0, false
	}
	return int(in - InputDigit0), true
}

func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputPause:
		return "pause"
	case InputQuit:
		return "quit"
	case InputAttack:
		return "attack"
	case InputSpell:
		return "spell"
	case InputFlee:
		return "flee"
	}
	if d, ok := in.Digit(); ok {
		return string(rune('0' + d))
	}
	return "unknown"
}
