package pixelsprite

import (
	"math"
	"math/rand/v2"
)

// seqSource replays a fixed cycle of values in [0,1) through
// math/rand/v2's Float64 (top 53 bits of Uint64).
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Uint64() uint64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return uint64(v * (1 << 53))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

type countingSource struct {
	src rand.Source
	n   int
}

func (c *countingSource) Uint64() uint64 {
	c.n++
	return c.src.Uint64()
}
