// Package util provides small helpers shared by tests and examples.
package util

import (
	"math/rand"

	"github.com/mreduce/multivec"
	"github.com/mreduce/multivec/vector"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// FillVector overwrites every entry of v with standard normal samples.
func (r *RNG) FillVector(v vector.Vector) {
	for i := 0; i < v.Len(); i++ {
		v.SetVec(i, r.rand.NormFloat64())
	}
}

// FillMultiVector overwrites every element of m with standard normal
// samples. Randomized range finders draw their test multivector this way.
func (r *RNG) FillMultiVector(m *multivec.MultiVector) {
	for i := 0; i < m.Len(); i++ {
		r.FillVector(m.At(i))
	}
}
