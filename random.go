package pixelsprite

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a PCG source seeded from a single value.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// stream is the only source of randomness for one generation call.
// A nil Src falls back to the process-wide math/rand/v2 source, which is
// safe for concurrent use but not reproducible.
type stream struct {
	u distuv.Uniform
}

func newStream(src rand.Source) *stream {
	return &stream{u: distuv.Uniform{Min: 0, Max: 1, Src: src}}
}

// float returns a uniform value in [0,1).
func (s *stream) float() float64 {
	return s.u.Rand()
}

// spread returns a uniform value in [-1,1).
func (s *stream) spread() float64 {
	return s.float()*2 - 1
}
