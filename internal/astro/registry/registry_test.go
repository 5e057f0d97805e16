package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cosmogen-server/internal/astro/registry"
)

// TestSchemaIntegrity checks the structural invariants every definition in
// the closed registry must hold: a range and a fixed draw position for every
// declared field, sane bounds, and weights inside [0, 1].
func TestSchemaIntegrity(t *testing.T) {
	defs := registry.All()
	require.NotEmpty(t, defs)

	for _, def := range defs {
		require.NotEmpty(t, def.Key)
		require.NotEmpty(t, def.Name)
		require.NotEmpty(t, def.FormationMechanisms, "%s has no formation mechanisms", def.Key)
		require.NotEmpty(t, def.FieldOrder, "%s has no field order", def.Key)

		require.Len(t, def.Ranges, len(def.FieldOrder),
			"%s: every field in FieldOrder needs exactly one range", def.Key)

		for _, field := range def.FieldOrder {
			r, ok := def.Ranges[field]
			require.True(t, ok, "%s: field %q in FieldOrder has no range", def.Key, field)
			require.LessOrEqual(t, r.Min, r.Max, "%s: field %q has min > max", def.Key, field)
		}

		require.GreaterOrEqual(t, def.Discoverability, 0.0, "%s", def.Key)
		require.LessOrEqual(t, def.Discoverability, 1.0, "%s", def.Key)

		for label, score := range map[string]int{
			"scientific_value": def.ScientificValue,
			"danger_level":     def.DangerLevel,
			"resource_value":   def.ResourceValue,
		} {
			require.GreaterOrEqual(t, score, 1, "%s: %s", def.Key, label)
			require.LessOrEqual(t, score, 10, "%s: %s", def.Key, label)
		}
	}
}

// TestLog10FieldsDeclared: mass is log-scaled everywhere; spin, charge and
// metallicity never are. The sampling mode is schema, not inference.
func TestLog10FieldsDeclared(t *testing.T) {
	for _, def := range registry.All() {
		require.True(t, def.Ranges[registry.FieldMass].Log10, "%s: mass must be log10-scaled", def.Key)

		for _, linear := range []string{registry.FieldSpin, registry.FieldCharge, registry.FieldMetallicity} {
			if r, ok := def.Ranges[linear]; ok {
				require.False(t, r.Log10, "%s: field %q must be linear", def.Key, linear)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	def, ok := registry.Lookup("kerr_like")
	require.True(t, ok)
	require.Equal(t, registry.CategoryBlackHole, def.Category)
	require.GreaterOrEqual(t, def.Ranges[registry.FieldSpin].Min, 0.0)
	require.LessOrEqual(t, def.Ranges[registry.FieldSpin].Max, 0.998)

	_, ok = registry.Lookup("not_a_real_class")
	require.False(t, ok)
}

func TestKeysSortedAndComplete(t *testing.T) {
	keys := registry.Keys()
	require.Len(t, keys, len(registry.All()))
	require.IsIncreasing(t, keys)

	for _, key := range keys {
		_, ok := registry.Lookup(key)
		require.True(t, ok)
	}
}

func TestAllReturnsStableOrder(t *testing.T) {
	a := registry.All()
	b := registry.All()
	require.Equal(t, a, b)

	// Black holes enumerate first; the selector's determinism depends on it.
	require.Equal(t, registry.CategoryBlackHole, a[0].Category)
}

func TestByCategory(t *testing.T) {
	total := 0
	for _, cat := range []registry.Category{
		registry.CategoryBlackHole,
		registry.CategoryGalaxy,
		registry.CategoryStar,
	} {
		defs := registry.ByCategory(cat)
		require.NotEmpty(t, defs)
		for _, def := range defs {
			require.Equal(t, cat, def.Category)
		}
		total += len(defs)
	}
	require.Equal(t, len(registry.All()), total)
}
