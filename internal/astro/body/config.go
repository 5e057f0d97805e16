// Package body defines the concrete parameter set of one generated object
// and the generation settings that accompany it through the derivation
// pipeline.
package body

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"cosmogen-server/internal/astro/registry"
)

// BinaryState carries the companion parameters of an object that is part of
// a binary. All zero for isolated objects; composite generators fill it in
// after the member configs are built.
type BinaryState struct {
	IsBinary           bool    `json:"is_binary"`
	CompanionMassSolar float64 `json:"companion_mass_solar,omitempty"`
	SeparationM        float64 `json:"separation_m,omitempty"`
	Eccentricity       float64 `json:"eccentricity,omitempty"`
}

// Config is one generated object's concrete parameters. It is immutable
// after construction except for Binary, which a composite generator may set
// once relational quantities are known.
type Config struct {
	ClassificationKey string            `json:"classification_key"`
	Category          registry.Category `json:"category"`
	Seed              int64             `json:"seed"`

	// Fields holds the sampled scalars keyed by registry field name, in the
	// units the registry declares for each field.
	Fields map[string]float64 `json:"fields"`

	// Overrides echoes the caller-supplied values that replaced sampling.
	// Together with ClassificationKey and Seed it forms the minimal tuple
	// that reproduces this object exactly.
	Overrides map[string]float64 `json:"overrides,omitempty"`

	FormationMechanism string                  `json:"formation_mechanism"`
	Binary             BinaryState             `json:"binary"`
	Visual             registry.VisualFeatures `json:"visual"`
}

// Field returns a sampled scalar by registry field name, zero if the
// classification does not declare it.
func (c *Config) Field(name string) float64 {
	return c.Fields[name]
}

func (c *Config) MassSolar() float64 { return c.Fields[registry.FieldMass] }
func (c *Config) Spin() float64      { return c.Fields[registry.FieldSpin] }
func (c *Config) AgeYears() float64  { return c.Fields[registry.FieldAge] }

// reproducibleTuple is the canonical persisted form: everything needed to
// regenerate the object, nothing derived.
type reproducibleTuple struct {
	ClassificationKey string             `json:"classification_key"`
	Seed              int64              `json:"seed"`
	Overrides         map[string]float64 `json:"overrides,omitempty"`
}

// Fingerprint returns a stable hex digest of the reproducible tuple,
// suitable as an external cache key. Two configs with the same
// classification, seed and overrides always fingerprint identically;
// encoding/json sorts map keys, which keeps the digest canonical.
func (c *Config) Fingerprint() string {
	tuple := reproducibleTuple{
		ClassificationKey: c.ClassificationKey,
		Seed:              c.Seed,
		Overrides:         c.Overrides,
	}

	// Marshal of a plain struct with a float64 map cannot fail.
	raw, _ := json.Marshal(tuple)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
