package combat

// FadeSpeed is how much alpha changes per frame.
const FadeSpeed = 2

// FadeState is the direction the enemy art is fading.
type FadeState int

const (
	FadeSteady FadeState = iota
	FadeIn
	FadeOut
)

func (s FadeState) String() string {
	switch s {
	case FadeSteady:
		return "steady"
	case FadeIn:
		return "fading_in"
	case FadeOut:
		return "fading_out"
	default:
		return "unknown"
	}
}

// Fade animates the enemy art's opacity in [0, 255]. ArtKey is the art being
// faded; it is cleared when a fade-out reaches zero.
type Fade struct {
	State  FadeState
	Alpha  int
	ArtKey string
}

// In starts fading art in from fully transparent.
func (f *Fade) In(artKey string) {
	f.ArtKey = artKey
	f.Alpha = 0
	f.State = FadeIn
}

// Out starts fading the current art out from its current alpha.
func (f *Fade) Out() {
	if f.ArtKey == "" {
		return
	}
	f.State = FadeOut
}

// Clear drops the art immediately.
func (f *Fade) Clear() {
	*f = Fade{}
}

// Visible reports whether there is art to draw.
func (f *Fade) Visible() bool {
	return f.ArtKey != "" && f.Alpha > 0
}

// Step advances the fade by one frame.
func (f *Fade) Step() {
	switch f.State {
	case FadeIn:
		f.Alpha += FadeSpeed
		if f.Alpha >= 255 {
			f.Alpha = 255
			f.State = FadeSteady
		}
	case FadeOut:
		f.Alpha -= FadeSpeed
		if f.Alpha <= 0 {
			f.Clear()
		}
	}
}
