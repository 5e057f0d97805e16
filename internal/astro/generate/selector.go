package generate

import (
	"fmt"

	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/astro/rng"
)

// Resolve picks the type definition a generation call will use. A non-empty
// key is looked up directly; an empty key triggers weighted-rejection
// selection over the whole registry.
//
// The weighted-rejection scheme is inherited behavior, preserved exactly:
// each definition is kept when a fresh draw lands below its discoverability,
// then one survivor is picked uniformly; if every definition is rejected,
// the fallback picks uniformly from the full list, which biases toward rare
// types on that branch. This is not true proportional-weight sampling, and
// replacing it would change which object every seed produces.
func Resolve(key string, src *rng.Source) (*registry.TypeDefinition, error) {
	if key != "" {
		def, ok := registry.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClassification, key)
		}
		return def, nil
	}

	all := registry.All()
	candidates := make([]*registry.TypeDefinition, 0, len(all))
	for _, def := range all {
		if src.Float64() < def.Discoverability {
			candidates = append(candidates, def)
		}
	}

	if len(candidates) > 0 {
		return candidates[src.Intn(len(candidates))], nil
	}
	return all[src.Intn(len(all))], nil
}
