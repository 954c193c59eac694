package maze

import "math/rand/v2"

// Source picks one of the four directions uniformly at random
// Reproducibility is the caller's concern: a seeded Source yields a reproducible maze sequence
type Source interface {
	Direction() Direction
}

// RandSource is a deterministic PCG-backed Source
type RandSource struct {
	r *rand.Rand
}

// NewRandSource creates a RandSource seeded with seed
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// Direction implements Source
func (s *RandSource) Direction() Direction {
	return Direction(s.r.IntN(DirectionCount))
}

// SourceFunc adapts a plain function to Source
type SourceFunc func() Direction

// Direction implements Source
func (f SourceFunc) Direction() Direction { return f() }
