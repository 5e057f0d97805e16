package physics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
)

func TestObservablesFluxAndMagnitude(t *testing.T) {
	def, _ := registry.Lookup("spiral")
	cfg := galaxyConfig(1e11, 10, 2)
	phys := physics.Derive(cfg, def)

	near := physics.DeriveObservables(cfg, phys, def, 1e6)
	far := physics.DeriveObservables(cfg, phys, def, 1e7)

	require.Greater(t, near.FluxWm2, far.FluxWm2)
	// 10x the distance = 100x fainter = 5 magnitudes dimmer.
	require.InDelta(t, 5.0, far.ApparentMagnitude-near.ApparentMagnitude, 1e-9)
}

func TestObservablesBaselineFlagsCarryOver(t *testing.T) {
	def, _ := registry.Lookup("spiral")
	cfg := galaxyConfig(1e11, 10, 2)
	phys := physics.Derive(cfg, def)

	obs := physics.DeriveObservables(cfg, phys, def, 1e6)
	require.True(t, obs.OpticalDetectable)
	require.True(t, obs.InfraredSource)
	require.False(t, obs.MergerSignature, "isolated objects never flag a merger")
}

func TestAccretionDrivenVariability(t *testing.T) {
	def, _ := registry.Lookup("supermassive")

	quiet := blackHoleConfig(1e8, 0.5, 0.1)
	loud := blackHoleConfig(1e8, 0.5, 0.9)

	obsQuiet := physics.DeriveObservables(quiet, physics.Derive(quiet, def), def, 1e6)
	obsLoud := physics.DeriveObservables(loud, physics.Derive(loud, def), def, 1e6)

	// The class baseline already flags variability for supermassive holes.
	require.True(t, obsQuiet.Variable)
	require.True(t, obsLoud.Variable)
}

func TestBinaryObservables(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")

	cfg := blackHoleConfig(30, 0.5, 0.3)
	rs := physics.SchwarzschildRadius(30 * physics.SolarMass)
	cfg.Binary = body.BinaryState{
		IsBinary:           true,
		CompanionMassSolar: 30,
		SeparationM:        100 * rs, // deep inside the close-binary threshold
	}

	phys := physics.Derive(cfg, def)
	obs := physics.DeriveObservables(cfg, phys, def, 1e6)

	require.Greater(t, obs.GWStrain, 0.0)
	require.True(t, obs.MergerSignature)

	// Push the pair wide and the merger signature clears; the strain also
	// drops below the detector floor.
	cfg.Binary.SeparationM = 1e6 * rs
	obsWide := physics.DeriveObservables(cfg, physics.Derive(cfg, def), def, 1e6)
	require.False(t, obsWide.MergerSignature)
	require.Less(t, obsWide.GWStrain, obs.GWStrain)
	require.False(t, obsWide.GWDetectable, "sub-floor strain must not be detectable")
}

// A class flagged as a gravitational-wave source contributes no strain on
// its own: detectability is strictly strain-over-floor, so an isolated
// instance is never GW-detectable.
func TestIsolatedGWSourceClassNotDetectable(t *testing.T) {
	def, _ := registry.Lookup("binary_merger_remnant")
	require.True(t, def.Observables.GravitationalWaveSource)

	cfg := blackHoleConfig(60, 0.7, 0.1)
	cfg.ClassificationKey = "binary_merger_remnant"

	obs := physics.DeriveObservables(cfg, physics.Derive(cfg, def), def, 1e6)
	require.Zero(t, obs.GWStrain)
	require.False(t, obs.GWDetectable)
}
