// Package random provides the production ports.RandomSource.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/doeshing/diceroll-go/internal/ports"
)

// Source is a PCG-backed random source safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a source seeded from the runtime's random state.
func New() *Source {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns a source whose sequence is fully determined by seed.
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange returns a uniformly distributed value in [min, max]. It returns min
// when max < min.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.IntN(max-min+1)
}

var _ ports.RandomSource = (*Source)(nil)
