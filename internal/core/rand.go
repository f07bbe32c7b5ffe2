package core

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by spawning and cloud generation.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// FixedRand replays a fixed sequence of floats in [0, 1), cycling when
// exhausted. Intn maps the next float onto [0, n).
type FixedRand struct {
	Values []float64
	pos    int
}

// Float64 returns the next value of the sequence.
func (f *FixedRand) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	return v
}

// Intn returns the next value scaled to [0, n).
func (f *FixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(f.Float64() * float64(n))
}
