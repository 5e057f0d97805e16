// Package catalog serves the read-only classification registry over the
// API: list views and full type definitions.
package catalog

import (
	"log/slog"

	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/shared/errors"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing catalog service")

	return &Service{logger: logger}
}

// List returns classification summaries, optionally filtered by category.
// An unrecognized category yields a validation error rather than an empty
// list.
func (s *Service) List(category string) ([]ClassificationSummary, error) {
	logger := s.logger.With("component", "catalog_service", "operation", "list", "category", category)
	logger.Debug("Listing classifications")

	defs := registry.All()
	if category != "" {
		switch registry.Category(category) {
		case registry.CategoryBlackHole, registry.CategoryGalaxy, registry.CategoryStar:
			defs = registry.ByCategory(registry.Category(category))
		default:
			return nil, errors.Validationf("unknown category: %q", category)
		}
	}

	summaries := make([]ClassificationSummary, 0, len(defs))
	for _, def := range defs {
		summaries = append(summaries, summarize(def))
	}

	logger.Debug("Classifications listed", "count", len(summaries))
	return summaries, nil
}

// Get returns the full type definition for one classification key.
func (s *Service) Get(key string) (*registry.TypeDefinition, error) {
	logger := s.logger.With("component", "catalog_service", "operation", "get", "key", key)
	logger.Debug("Looking up classification")

	def, ok := registry.Lookup(key)
	if !ok {
		return nil, errors.UnknownClassificationf("classification not found: %q", key)
	}
	return def, nil
}
