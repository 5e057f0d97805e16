package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
)

func blackHoleConfig(massSolar, spin, accretionRate float64) *body.Config {
	return &body.Config{
		ClassificationKey: "stellar_mass",
		Category:          registry.CategoryBlackHole,
		Fields: map[string]float64{
			registry.FieldMass:          massSolar,
			registry.FieldSpin:          spin,
			registry.FieldAccretionRate: accretionRate,
		},
	}
}

func TestSchwarzschildRadiusSolarMass(t *testing.T) {
	// The canonical number: ~2.95 km for one solar mass.
	rs := physics.SchwarzschildRadius(physics.SolarMass)
	require.InEpsilon(t, 2953.0, rs, 0.01)
}

// TestRadiusOrdering: r_s <= photon sphere <= ISCO across the full allowed
// spin range, and ergosphere >= r_s, for masses spanning primordial to
// ultramassive.
func TestRadiusOrdering(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")

	for _, massSolar := range []float64{1e-10, 1, 10, 1e6, 1e10} {
		for _, spin := range []float64{0, 0.1, 0.5, 0.9, 0.998} {
			p := physics.Derive(blackHoleConfig(massSolar, spin, 0.1), def)

			require.LessOrEqual(t, p.SchwarzschildRadiusM, p.PhotonSphereRadiusM,
				"mass=%g spin=%g", massSolar, spin)
			require.LessOrEqual(t, p.PhotonSphereRadiusM, p.ISCORadiusM,
				"mass=%g spin=%g", massSolar, spin)
			require.GreaterOrEqual(t, p.ErgosphereRadiusM, p.SchwarzschildRadiusM,
				"mass=%g spin=%g", massSolar, spin)
			require.LessOrEqual(t, p.OuterHorizonRadiusM, p.SchwarzschildRadiusM,
				"mass=%g spin=%g", massSolar, spin)
		}
	}
}

// TestSpinZeroLimits: at spin zero the Kerr quantities collapse to their
// Schwarzschild values exactly.
func TestSpinZeroLimits(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")
	p := physics.Derive(blackHoleConfig(10, 0, 0.1), def)

	require.Equal(t, p.SchwarzschildRadiusM, p.ErgosphereRadiusM)
	require.Equal(t, p.SchwarzschildRadiusM, p.OuterHorizonRadiusM)
	require.InEpsilon(t, 3*p.SchwarzschildRadiusM, p.ISCORadiusM, 1e-12,
		"Schwarzschild ISCO sits at 6GM/c^2")
	require.Zero(t, p.JetPowerW, "no spin, no Blandford-Znajek power")
}

func TestHawkingTemperatureScalesInversely(t *testing.T) {
	small := physics.HawkingTemperature(physics.SolarMass)
	large := physics.HawkingTemperature(10 * physics.SolarMass)

	require.InEpsilon(t, 10.0, small/large, 1e-9)
	// ~62 nK for a solar mass black hole.
	require.InEpsilon(t, 6.17e-8, small, 0.05)

	require.Zero(t, physics.HawkingTemperature(0), "zero mass returns the limit, not a panic")
}

func TestEvaporationTimeCubicInMass(t *testing.T) {
	t1 := physics.EvaporationTime(1e11) // asteroid-mass primordial hole
	t2 := physics.EvaporationTime(2e11)

	require.InEpsilon(t, 8.0, t2/t1, 1e-9)
	require.Zero(t, physics.EvaporationTime(0))
}

func TestDiskLuminosityTracksEddington(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")

	quiet := physics.Derive(blackHoleConfig(10, 0.5, 0), def)
	require.Zero(t, quiet.DiskLuminosityW)
	require.Zero(t, quiet.DiskTemperatureK)

	loud := physics.Derive(blackHoleConfig(10, 0.5, 1), def)
	require.InEpsilon(t, loud.EddingtonLuminosityW, loud.DiskLuminosityW, 1e-12)
	require.Greater(t, loud.DiskTemperatureK, 0.0)
}

func TestJetPowerSpinScaling(t *testing.T) {
	def, _ := registry.Lookup("kerr_like")

	slow := physics.Derive(blackHoleConfig(100, 0.7, 0.5), def)
	fast := physics.Derive(blackHoleConfig(100, 0.998, 0.5), def)

	require.Greater(t, slow.JetPowerW, 0.0)
	require.Greater(t, fast.JetPowerW, slow.JetPowerW)
}

func TestZeroMassDoesNotPanic(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")

	require.NotPanics(t, func() {
		p := physics.Derive(blackHoleConfig(0, 0.5, 0.5), def)
		require.Zero(t, p.SchwarzschildRadiusM)
		require.False(t, math.IsNaN(p.ISCORadiusM))
		require.False(t, math.IsInf(p.HawkingTemperatureK, 0))
	})
}
