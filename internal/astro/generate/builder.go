package generate

import (
	"fmt"
	"math"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/astro/rng"
)

// Overrides replaces sampling for the named fields. Values are in the same
// linear units the instance config stores, even for fields whose range is
// declared in log10 units.
type Overrides map[string]float64

// buildConfig samples one instance config from a type definition. Draw
// order is fixed: one draw per non-overridden field in the definition's
// FieldOrder, then one draw for the formation mechanism. Overridden fields
// consume no draw.
func buildConfig(def *registry.TypeDefinition, seed int64, overrides Overrides, src *rng.Source) (*body.Config, error) {
	if err := validateOverrides(def, overrides); err != nil {
		return nil, err
	}

	fields := make(map[string]float64, len(def.FieldOrder))
	for _, name := range def.FieldOrder {
		if value, ok := overrides[name]; ok {
			// Overrides bypass range validation; an out-of-range value is
			// accepted as-is.
			fields[name] = value
			continue
		}

		r := def.Ranges[name]
		if r.Log10 {
			fields[name] = rng.SampleLog10(src, r.Min, r.Max)
		} else {
			fields[name] = rng.SampleLinear(src, r.Min, r.Max)
		}
	}

	cfg := &body.Config{
		ClassificationKey: def.Key,
		Category:          def.Category,
		Seed:              seed,
		Fields:            fields,
		Visual:            def.Visual,
	}
	if len(overrides) > 0 {
		cfg.Overrides = make(map[string]float64, len(overrides))
		for name, value := range overrides {
			cfg.Overrides[name] = value
		}
	}
	if len(def.FormationMechanisms) > 0 {
		cfg.FormationMechanism = def.FormationMechanisms[src.Intn(len(def.FormationMechanisms))]
	}
	return cfg, nil
}

// validateOverrides applies the sanity checks overrides still get: the
// field must be declared by the classification, the value must be finite,
// and it must be non-negative unless the field is signed. Negative masses
// are rejected rather than clamped.
func validateOverrides(def *registry.TypeDefinition, overrides Overrides) error {
	for name, value := range overrides {
		if _, declared := def.Ranges[name]; !declared {
			return fmt.Errorf("%w: field %q is not declared by %q", ErrInvalidOverride, name, def.Key)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: field %q must be finite", ErrInvalidOverride, name)
		}
		if value < 0 && name != registry.FieldCharge {
			return fmt.Errorf("%w: field %q cannot be negative", ErrInvalidOverride, name)
		}
	}
	return nil
}
