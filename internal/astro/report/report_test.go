package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/astro/report"
)

func sunConfig(ageYr float64) *body.Config {
	return &body.Config{
		ClassificationKey: "main_sequence",
		Category:          registry.CategoryStar,
		Fields: map[string]float64{
			registry.FieldMass:        1,
			registry.FieldTemperature: 5772,
			registry.FieldAge:         ageYr,
		},
		FormationMechanism: "molecular_cloud_collapse",
	}
}

func TestReportDisplayUnits(t *testing.T) {
	def, ok := registry.Lookup("main_sequence")
	require.True(t, ok)

	cfg := sunConfig(4.6e9)
	phys := physics.Derive(cfg, def)
	obs := physics.DeriveObservables(cfg, phys, def, 1e6)

	r := report.Build(cfg, phys, obs, def, body.DefaultSettings(), 250*time.Microsecond)

	require.Equal(t, "main_sequence", r.ClassificationKey)
	require.Equal(t, string(registry.CategoryStar), r.Category)
	require.InEpsilon(t, 1.0, r.MassSolar, 1e-12)
	require.InEpsilon(t, 1.0, r.RadiusSolar, 1e-9)
	require.InEpsilon(t, 1.0, r.LuminositySolar, 0.02)
	require.Equal(t, "high", r.QualityLevel)
	require.InEpsilon(t, 0.25, r.DurationMs, 1e-9)
}

func TestReportBlackHoleKilometers(t *testing.T) {
	def, ok := registry.Lookup("stellar_mass")
	require.True(t, ok)

	cfg := &body.Config{
		ClassificationKey: "stellar_mass",
		Category:          registry.CategoryBlackHole,
		Fields: map[string]float64{
			registry.FieldMass: 10,
			registry.FieldSpin: 0,
		},
	}
	phys := physics.Derive(cfg, def)
	obs := physics.DeriveObservables(cfg, phys, def, 1e6)

	r := report.Build(cfg, phys, obs, def, body.DefaultSettings(), 0)

	require.InEpsilon(t, phys.SchwarzschildRadiusM/1e3, r.SchwarzschildRadiusKm, 1e-12)
	require.InEpsilon(t, 29.53, r.SchwarzschildRadiusKm, 0.01)
	require.Zero(t, r.RadiusSolar, "stellar metrics stay empty for compact objects")
}

func TestEvolutionStages(t *testing.T) {
	def, _ := registry.Lookup("main_sequence")
	settings := body.DefaultSettings()

	// Formation timescale for a 1 solar mass star is 1e7 yr.
	cases := map[float64]string{
		1e6:  report.StageForming,
		5e7:  report.StageYoung,
		5e9:  report.StageMature,
		1e13: report.StageAncient,
	}
	for ageYr, want := range cases {
		cfg := sunConfig(ageYr)
		phys := physics.Derive(cfg, def)
		obs := physics.DeriveObservables(cfg, phys, def, 1e6)
		r := report.Build(cfg, phys, obs, def, settings, 0)
		require.Equal(t, want, r.EvolutionStage, "age=%g", ageYr)
	}
}

func TestBinarySeparationInAU(t *testing.T) {
	def, _ := registry.Lookup("stellar_mass")

	cfg := &body.Config{
		ClassificationKey: "stellar_mass",
		Category:          registry.CategoryBlackHole,
		Fields:            map[string]float64{registry.FieldMass: 10},
		Binary: body.BinaryState{
			IsBinary:           true,
			CompanionMassSolar: 10,
			SeparationM:        physics.AU,
		},
	}
	phys := physics.Derive(cfg, def)
	obs := physics.DeriveObservables(cfg, phys, def, 1e6)

	r := report.Build(cfg, phys, obs, def, body.DefaultSettings(), 0)
	require.InEpsilon(t, 1.0, r.OrbitalSeparationAU, 1e-12)
}
