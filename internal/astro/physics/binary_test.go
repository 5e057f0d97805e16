package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/physics"
)

func TestOrbitalPeriodKepler(t *testing.T) {
	// Earth around the sun: one year, to the precision of the constants.
	period := physics.OrbitalPeriod(physics.SolarMass, 5.97e24, physics.AU)
	require.InEpsilon(t, physics.Year, period, 0.01)

	// Quadrupling the separation multiplies the period by 8.
	p1 := physics.OrbitalPeriod(physics.SolarMass, physics.SolarMass, physics.AU)
	p2 := physics.OrbitalPeriod(physics.SolarMass, physics.SolarMass, 4*physics.AU)
	require.InEpsilon(t, 8.0, p2/p1, 1e-9)
}

func TestOrbitalPeriodDegenerateInputs(t *testing.T) {
	require.Zero(t, physics.OrbitalPeriod(0, 0, physics.AU))
	require.Zero(t, physics.OrbitalPeriod(physics.SolarMass, physics.SolarMass, 0))
}

func TestInteractionStrengthInverseSquare(t *testing.T) {
	m := 10 * physics.SolarMass
	near := physics.InteractionStrength(m, m, 1e9)
	far := physics.InteractionStrength(m, m, 2e9)
	require.InEpsilon(t, 4.0, near/far, 1e-9)
}

func TestChirpMassEqualBinary(t *testing.T) {
	m := 30 * physics.SolarMass
	mc := physics.ChirpMass(m, m)

	// Equal-mass binary: Mc = m·2^(-1/5).
	require.InEpsilon(t, m*math.Pow(2, -0.2), mc, 1e-9)
}

func TestGWStrainFallsWithDistance(t *testing.T) {
	m := 30 * physics.SolarMass
	sep := 1e6 // close binary, m

	nearStrain := physics.GWStrain(m, m, sep, 1e6*physics.Parsec)
	farStrain := physics.GWStrain(m, m, sep, 1e8*physics.Parsec)

	require.Greater(t, nearStrain, 0.0)
	require.InEpsilon(t, 100.0, nearStrain/farStrain, 1e-9)
}

func TestCoalescenceTimeQuarticInSeparation(t *testing.T) {
	m := 30 * physics.SolarMass

	t1 := physics.CoalescenceTime(m, m, 1e9)
	t2 := physics.CoalescenceTime(m, m, 2e9)
	require.InEpsilon(t, 16.0, t2/t1, 1e-9)

	require.Zero(t, physics.CoalescenceTime(0, m, 1e9))
}
