// Package rng provides the deterministic pseudo-random source used by all
// generation calls.
//
// The recurrence is the Park–Miller minimal standard generator:
//
//	s' = (s * 16807) mod 2147483647
//
// with output (s'-1)/2147483646 in [0, 1). Regenerating an object from a
// stored (classification, seed, overrides) tuple must be bit-identical, so
// this exact recurrence is part of the persistence contract and no other
// generator may be substituted for it.
package rng

const (
	multiplier = 16807
	modulus    = 2147483647 // 2^31 - 1, prime

	// normalizer wraps seeds into [1, normalizer]; a state of 0 would be a
	// fixed point of the recurrence and must never occur.
	normalizer = modulus - 1
)

// Source is a sequential deterministic random source. It is not safe for
// concurrent use; each generation call owns its own Source.
type Source struct {
	state int64
}

// New returns a Source seeded with the given value. Zero and negative seeds
// are wrapped into [1, 2147483646] so every seed produces a valid stream.
func New(seed int64) *Source {
	s := seed % normalizer
	if s <= 0 {
		s += normalizer
	}
	return &Source{state: s}
}

// Float64 advances the generator and returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = s.state * multiplier % modulus
	return float64(s.state-1) / float64(normalizer)
}

// Intn returns a uniform integer in [0, n). It consumes exactly one draw.
// n must be positive.
func (s *Source) Intn(n int) int {
	return int(s.Float64() * float64(n))
}
