package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness consumed by content selection and ambient
// animation. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}
