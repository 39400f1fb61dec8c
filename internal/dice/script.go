package dice

// Script is a Rand that replays fixed draws in order. Intn returns the next
// scripted int (clamped into [0, n)), Float64 the next scripted float.
// Exhausted scripts return 0. It exists so outcomes can be forced in tests
// and replays.
type Script struct {
	Ints   []int
	Floats []float64
}

// Intn returns the next scripted integer.
func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Float64 returns the next scripted float.
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
