package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/rng"
)

// TestKnownSequence pins the first values of the Park–Miller recurrence so
// any change to the generator breaks loudly: seed 42 advances to
// 42*16807 = 705894, which maps to (705894-1)/2147483646.
func TestKnownSequence(t *testing.T) {
	src := rng.New(42)

	require.Equal(t, 705893.0/2147483646.0, src.Float64())
	require.Equal(t, float64(705894*16807%2147483647-1)/2147483646.0, src.Float64())
}

func TestDeterminism(t *testing.T) {
	a := rng.New(123456789)
	b := rng.New(123456789)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "streams diverged at draw %d", i)
	}
}

func TestOutputRange(t *testing.T) {
	src := rng.New(7)

	for i := 0; i < 10000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

// TestSeedNormalization: zero and negative seeds wrap into [1, 2147483646]
// and still produce valid, distinct-from-each-other streams.
func TestSeedNormalization(t *testing.T) {
	for _, seed := range []int64{0, -1, -2147483646, 2147483646} {
		src := rng.New(seed)
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0, "seed %d", seed)
		require.Less(t, v, 1.0, "seed %d", seed)
	}

	// seed 0 wraps to 2147483646, same as seeding with 2147483646 directly
	require.Equal(t, rng.New(0).Float64(), rng.New(2147483646).Float64())

	// seed -1 wraps to 2147483645
	require.Equal(t, rng.New(-1).Float64(), rng.New(2147483645).Float64())

	// Seeds at and above 2^31-1 reduce mod 2147483646, never landing on the
	// zero fixed point: 2147483647 behaves exactly like seed 1.
	require.Equal(t, rng.New(1).Float64(), rng.New(2147483647).Float64())
	require.Equal(t, rng.New(2).Float64(), rng.New(2147483648).Float64())
}

func TestIntnBounds(t *testing.T) {
	src := rng.New(99)

	for i := 0; i < 1000; i++ {
		v := src.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}
