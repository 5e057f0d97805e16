package body_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

func TestFingerprintStability(t *testing.T) {
	a := &body.Config{ClassificationKey: "stellar_mass", Seed: 42}
	b := &body.Config{ClassificationKey: "stellar_mass", Seed: 42}

	// Derived state must not leak into the fingerprint.
	b.Fields = map[string]float64{registry.FieldMass: 12.5}
	b.FormationMechanism = "core_collapse_supernova"

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSensitivity(t *testing.T) {
	base := &body.Config{ClassificationKey: "stellar_mass", Seed: 42}

	otherSeed := &body.Config{ClassificationKey: "stellar_mass", Seed: 43}
	require.NotEqual(t, base.Fingerprint(), otherSeed.Fingerprint())

	otherKey := &body.Config{ClassificationKey: "supermassive", Seed: 42}
	require.NotEqual(t, base.Fingerprint(), otherKey.Fingerprint())

	overridden := &body.Config{
		ClassificationKey: "stellar_mass",
		Seed:              42,
		Overrides:         map[string]float64{registry.FieldMass: 30},
	}
	require.NotEqual(t, base.Fingerprint(), overridden.Fingerprint())
}

func TestFieldAccessors(t *testing.T) {
	cfg := &body.Config{
		Fields: map[string]float64{
			registry.FieldMass: 8,
			registry.FieldSpin: 0.5,
			registry.FieldAge:  1e9,
		},
	}

	require.Equal(t, 8.0, cfg.MassSolar())
	require.Equal(t, 0.5, cfg.Spin())
	require.Equal(t, 1e9, cfg.AgeYears())
	require.Zero(t, cfg.Field(registry.FieldCharge), "undeclared fields read as zero")
}
