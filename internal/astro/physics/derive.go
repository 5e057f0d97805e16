// Package physics derives physical and observable quantities from an
// instance config and its type definition. Everything here is a pure,
// deterministic function of its inputs: no RNG draws, no I/O, no logging.
// Numeric edge cases (zero mass, zero spin) return the mathematically
// well-defined limit instead of panicking.
package physics

import (
	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

// Derive computes the physics profile for one object.
func Derive(cfg *body.Config, def *registry.TypeDefinition) *Profile {
	switch def.Category {
	case registry.CategoryBlackHole:
		return deriveBlackHole(cfg, def)
	case registry.CategoryGalaxy:
		return deriveGalaxy(cfg, def)
	default:
		return deriveStar(cfg, def)
	}
}
