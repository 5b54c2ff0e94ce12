// Package rng provides the seeded pseudo-random source shared by every stage
// of a generation run. Given the same seed, the same sequence of calls yields
// the same values on every platform.
package rng

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// pcgStream is xored into the seed to derive the second PCG word
const pcgStream = 0x9E3779B97F4A7C15

// Source is a deterministic random source seeded from a 64-bit value
type Source struct {
	r *rand.Rand
}

// New creates a source seeded with seed
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^pcgStream))}
}

// FromString creates a source whose seed is the xxhash64 of s
func FromString(s string) *Source {
	return New(HashSeed(s))
}

// HashSeed converts a seed string into a 64-bit seed
func HashSeed(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Entropy returns a non-reproducible seed drawn from the runtime's random source
func Entropy() uint64 {
	return rand.Uint64()
}

// Range returns an integer in [lo, hi). When hi <= lo it returns lo
// without consuming a value.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo)
}

// Float64 returns a value in [0, 1)
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Chance returns true with probability p
func (s *Source) Chance(p float64) bool {
	return s.r.Float64() < p
}
