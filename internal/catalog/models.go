package catalog

import "cosmogen-server/internal/astro/registry"

// ClassificationSummary is the list-view projection of a type definition.
type ClassificationSummary struct {
	Key             string                       `json:"key"`
	Category        registry.Category            `json:"category"`
	Name            string                       `json:"name"`
	Status          registry.ObservationalStatus `json:"status"`
	Discoverability float64                      `json:"discoverability"`
}

func summarize(def *registry.TypeDefinition) ClassificationSummary {
	return ClassificationSummary{
		Key:             def.Key,
		Category:        def.Category,
		Name:            def.Name,
		Status:          def.Status,
		Discoverability: def.Discoverability,
	}
}
