package physics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
)

func starConfig(key string, massSolar, tempK float64) *body.Config {
	return &body.Config{
		ClassificationKey: key,
		Category:          registry.CategoryStar,
		Fields: map[string]float64{
			registry.FieldMass:        massSolar,
			registry.FieldTemperature: tempK,
		},
	}
}

func TestSunLikeStar(t *testing.T) {
	def, _ := registry.Lookup("main_sequence")
	p := physics.Derive(starConfig("main_sequence", 1, 5772), def)

	require.InEpsilon(t, physics.SolarRadius, p.RadiusM, 1e-9)
	require.InEpsilon(t, physics.SolarLuminosity, p.TotalLuminosityW, 0.02)
	require.InEpsilon(t, 1e10, p.MainSequenceLifetimeYr, 1e-9)
	require.InEpsilon(t, 274.0, p.SurfaceGravityMS2, 0.01)
	require.InEpsilon(t, 617.5e3, p.EscapeVelocityMS, 0.01)
}

func TestDegenerateRemnantsShrinkWithMass(t *testing.T) {
	wd, _ := registry.Lookup("white_dwarf")
	light := physics.Derive(starConfig("white_dwarf", 0.4, 1e4), wd)
	heavy := physics.Derive(starConfig("white_dwarf", 1.2, 1e4), wd)
	require.Greater(t, light.RadiusM, heavy.RadiusM)

	ns, _ := registry.Lookup("neutron_star")
	p := physics.Derive(starConfig("neutron_star", 1.4, 5e5), ns)
	require.InEpsilon(t, 12e3, p.RadiusM, 1e-9)
	require.Greater(t, p.EscapeVelocityMS, 0.3*physics.C,
		"neutron star escape velocity is a sizable fraction of c")
}

func TestMassiveStarsDieYoung(t *testing.T) {
	def, _ := registry.Lookup("main_sequence")

	dwarf := physics.Derive(starConfig("main_sequence", 0.5, 3800), def)
	giant := physics.Derive(starConfig("main_sequence", 40, 45000), def)

	require.Greater(t, dwarf.MainSequenceLifetimeYr, giant.MainSequenceLifetimeYr)
	require.Less(t, giant.FormationTimescaleYr, dwarf.FormationTimescaleYr)
}

func TestMagnetarFieldDominates(t *testing.T) {
	ns, _ := registry.Lookup("neutron_star")
	mag, _ := registry.Lookup("magnetar")

	pn := physics.Derive(starConfig("neutron_star", 1.4, 5e5), ns)
	pm := physics.Derive(starConfig("magnetar", 1.4, 5e5), mag)

	require.Greater(t, pm.MagneticFieldT, 100*pn.MagneticFieldT)
}
