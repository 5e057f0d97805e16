package registry

import "sort"

// ordered is the canonical enumeration order of the registry, used by
// random classification selection. It is declaration order within each
// category table, black holes first, then galaxies, then stars. The order
// is load-bearing for determinism: reordering it changes which definition
// a given seed selects.
var ordered []*TypeDefinition

// byKey indexes the same definitions for direct lookup.
var byKey map[string]*TypeDefinition

func init() {
	tables := [][]TypeDefinition{blackHoleTypes, galaxyTypes, stellarTypes}

	byKey = make(map[string]*TypeDefinition)
	for _, table := range tables {
		for i := range table {
			def := &table[i]
			if _, dup := byKey[def.Key]; dup {
				panic("registry: duplicate classification key " + def.Key)
			}
			byKey[def.Key] = def
			ordered = append(ordered, def)
		}
	}
}

// Lookup returns the definition for a classification key. The returned
// definition is shared and read-only.
func Lookup(key string) (*TypeDefinition, bool) {
	def, ok := byKey[key]
	return def, ok
}

// All returns every definition in canonical enumeration order. The returned
// slice is freshly allocated but the definitions themselves are shared.
func All() []*TypeDefinition {
	out := make([]*TypeDefinition, len(ordered))
	copy(out, ordered)
	return out
}

// ByCategory returns the definitions of one category, in canonical order.
func ByCategory(category Category) []*TypeDefinition {
	var out []*TypeDefinition
	for _, def := range ordered {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Keys returns all classification keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
