package physics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
)

func galaxyConfig(massSolar, sizeKpc, sfr float64) *body.Config {
	return &body.Config{
		ClassificationKey: "spiral",
		Category:          registry.CategoryGalaxy,
		Fields: map[string]float64{
			registry.FieldMass:              massSolar,
			registry.FieldSize:              sizeKpc,
			registry.FieldStarFormationRate: sfr,
		},
	}
}

func TestGalaxyScalingRelations(t *testing.T) {
	def, _ := registry.Lookup("spiral")
	p := physics.Derive(galaxyConfig(1e11, 10, 2), def)

	// A 1e11 solar mass spheroid sits at the 200 km/s dispersion anchor.
	require.InEpsilon(t, 2.0e5, p.VelocityDispersionMS, 1e-9)

	require.InEpsilon(t, 10*physics.Kiloparsec, p.HalfLightRadiusM, 1e-12)
	require.Greater(t, p.HalfLightRadiusM, p.ScaleLengthM)

	require.Equal(t, def.Physics.SersicIndex, p.SersicIndex)
	require.Equal(t, def.Physics.DarkMatterFraction, p.DarkMatterFraction)

	require.Greater(t, p.StellarLuminosityW, 0.0)
	require.Greater(t, p.SFRLuminosityW, 0.0)
	require.InEpsilon(t, p.StellarLuminosityW+p.SFRLuminosityW+p.AGNLuminosityW,
		p.TotalLuminosityW, 1e-12)
}

func TestGalaxyDispersionSlope(t *testing.T) {
	def, _ := registry.Lookup("elliptical")

	small := physics.Derive(galaxyConfig(1e10, 5, 0.01), def)
	big := physics.Derive(galaxyConfig(1e12, 20, 0.01), def)

	// Two decades of mass = one factor of 10^0.5 in dispersion.
	require.InEpsilon(t, 3.1623, big.VelocityDispersionMS/small.VelocityDispersionMS, 1e-3)
}

func TestAGNLuminosityFollowsEddingtonRatio(t *testing.T) {
	quiet, _ := registry.Lookup("elliptical")
	loud, _ := registry.Lookup("quasar_host")

	pq := physics.Derive(galaxyConfig(1e11, 10, 0.01), quiet)
	pl := physics.Derive(galaxyConfig(1e11, 10, 10), loud)

	require.Greater(t, pl.AGNLuminosityW, pq.AGNLuminosityW)
	require.InEpsilon(t, loud.Physics.EddingtonRatio/quiet.Physics.EddingtonRatio,
		pl.AGNLuminosityW/pq.AGNLuminosityW, 1e-9)
}
