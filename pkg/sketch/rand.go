package sketch

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a deterministic generator for the given seed. The same
// seed always produces the same drawing.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// TimeRNG returns a generator seeded from the current time, for callers
// that do not need reproducibility.
func TimeRNG() *rand.Rand {
	return NewRNG(uint64(time.Now().UnixNano()))
}
