package generation

import (
	"time"

	"cosmogen-server/internal/astro/generate"
)

// GenerationRecord is the persisted reproducible tuple of one generation:
// classification key, seed and overrides. Derived quantities are never
// stored; regenerating from the tuple reproduces them exactly.
type GenerationRecord struct {
	ID                int                `json:"id"`
	ClassificationKey string             `json:"classification_key"`
	Seed              int64              `json:"seed"`
	Overrides         map[string]float64 `json:"overrides,omitempty"`
	Fingerprint       string             `json:"fingerprint"`
	CreatedAt         time.Time          `json:"created_at"`
}

// GenerationResponse pairs a stored record with the full derived result.
type GenerationResponse struct {
	Record *GenerationRecord `json:"record"`
	Result *generate.Result  `json:"result"`
}
