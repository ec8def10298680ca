package rng

import "math/rand/v2"

// Source is the randomness capability consumed by loot generation: a uniform
// float in [0,1) and an inclusive integer range draw. Injected so tests can
// substitute a deterministic sequence.
type Source interface {
	Float64() float64
	IntBetween(min, max int) int
}

type mathSource struct {
	r *rand.Rand
}

// New returns a Source backed by the shared math/rand generator.
// Game logic randomness, not security critical.
func New() Source {
	return mathSource{}
}

// NewSeeded returns a deterministic Source for reproducible rolls.
func NewSeeded(seed uint64) Source {
	return mathSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s mathSource) Float64() float64 {
	if s.r != nil {
		return s.r.Float64()
	}
	return rand.Float64()
}

func (s mathSource) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	span := max - min + 1
	if s.r != nil {
		return s.r.IntN(span) + min
	}
	return rand.IntN(span) + min
}
