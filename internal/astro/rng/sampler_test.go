package rng_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/rng"
)

func TestSampleLinearBounds(t *testing.T) {
	src := rng.New(1)

	for i := 0; i < 5000; i++ {
		v := rng.SampleLinear(src, -3.5, 12.25)
		require.GreaterOrEqual(t, v, -3.5)
		require.Less(t, v, 12.25)
	}
}

func TestSampleLinearDegenerateRange(t *testing.T) {
	src := rng.New(1)
	require.Equal(t, 4.0, rng.SampleLinear(src, 4, 4))
}

func TestSampleLog10Bounds(t *testing.T) {
	src := rng.New(2)

	// log10 bounds of a stellar-mass range: 10^0.5 .. 10^2
	for i := 0; i < 5000; i++ {
		v := rng.SampleLog10(src, 0.5, 2)
		require.GreaterOrEqual(t, v, math.Pow(10, 0.5))
		require.Less(t, v, 100.0)
	}
}

func TestSamplersShareTheStream(t *testing.T) {
	a := rng.New(55)
	b := rng.New(55)

	// One linear draw consumes exactly one value from the stream.
	rng.SampleLinear(a, 0, 1)
	b.Float64()
	require.Equal(t, a.Float64(), b.Float64())

	// So does one log10 draw.
	rng.SampleLog10(a, 1, 3)
	b.Float64()
	require.Equal(t, a.Float64(), b.Float64())
}
