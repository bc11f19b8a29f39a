// Package random provides the sampler used to draw the medium and diverse bands.
package random

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.Sampler = (*Source)(nil)

// Source is a goroutine-safe PCG generator.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

// NewSource creates a generator. Seed 0 picks a seed from the clock,
// so repeated runs differ; any other seed gives a reproducible sequence.
func NewSource(seed int64) *Source {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return &Source{
		rng:  rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		seed: s,
	}
}

// Seed returns the seed in use.
func (s *Source) Seed() uint64 {
	return s.seed
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
