// Package report assembles the display-facing statistics summary of one
// generated object. It converts the SI quantities of a physics profile into
// the units a UI shows (solar masses, kilometers, years, solar
// luminosities) and attaches generation metadata. Building a report is a
// single deterministic pass; the only non-derived input is the wall-clock
// duration the caller measured.
package report

import (
	"time"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
)

// Evolution stage labels, ordered by the ratio of age to formation
// timescale.
const (
	StageForming = "forming"
	StageYoung   = "young"
	StageMature  = "mature"
	StageAncient = "ancient"
)

// Report is the final aggregate handed to the renderer/UI. It is never
// mutated after creation.
type Report struct {
	ClassificationKey string `json:"classification_key"`
	Name              string `json:"name"`
	Category          string `json:"category"`

	MassSolar          float64 `json:"mass_solar"`
	AgeYr              float64 `json:"age_yr,omitempty"`
	FormationMechanism string  `json:"formation_mechanism,omitempty"`
	EvolutionStage     string  `json:"evolution_stage"`

	LuminositySolar   float64 `json:"luminosity_solar,omitempty"`
	ApparentMagnitude float64 `json:"apparent_magnitude,omitempty"`

	// Compact-object display metrics.
	SchwarzschildRadiusKm float64 `json:"schwarzschild_radius_km,omitempty"`
	ISCORadiusKm          float64 `json:"isco_radius_km,omitempty"`
	ErgosphereRadiusKm    float64 `json:"ergosphere_radius_km,omitempty"`
	HawkingTemperatureK   float64 `json:"hawking_temperature_k,omitempty"`
	EvaporationTimeYr     float64 `json:"evaporation_time_yr,omitempty"`

	// Extended-object display metrics.
	HalfLightRadiusKpc   float64 `json:"half_light_radius_kpc,omitempty"`
	VelocityDispersionKm float64 `json:"velocity_dispersion_kms,omitempty"`

	// Stellar display metrics.
	RadiusSolar            float64 `json:"radius_solar,omitempty"`
	SurfaceTemperatureK    float64 `json:"surface_temperature_k,omitempty"`
	MainSequenceLifetimeYr float64 `json:"main_sequence_lifetime_yr,omitempty"`

	// Binary display metrics.
	OrbitalSeparationAU float64 `json:"orbital_separation_au,omitempty"`

	// Generation metadata.
	QualityLevel string  `json:"quality_level"`
	DurationMs   float64 `json:"duration_ms"`
}

// Build converts a derived result into display units. elapsed is the
// wall-clock duration of the generation call that produced the inputs.
func Build(cfg *body.Config, phys *physics.Profile, obs *physics.Observables, def *registry.TypeDefinition, settings body.Settings, elapsed time.Duration) *Report {
	r := &Report{
		ClassificationKey:  cfg.ClassificationKey,
		Name:               def.Name,
		Category:           string(def.Category),
		MassSolar:          cfg.MassSolar(),
		AgeYr:              cfg.AgeYears(),
		FormationMechanism: cfg.FormationMechanism,
		EvolutionStage:     evolutionStage(cfg.AgeYears(), phys.FormationTimescaleYr),
		LuminositySolar:    phys.TotalLuminosityW / physics.SolarLuminosity,
		ApparentMagnitude:  obs.ApparentMagnitude,
		QualityLevel:       settings.QualityLevel,
		DurationMs:         float64(elapsed) / float64(time.Millisecond),
	}

	switch def.Category {
	case registry.CategoryBlackHole:
		r.SchwarzschildRadiusKm = phys.SchwarzschildRadiusM / 1e3
		r.ISCORadiusKm = phys.ISCORadiusM / 1e3
		r.ErgosphereRadiusKm = phys.ErgosphereRadiusM / 1e3
		r.HawkingTemperatureK = phys.HawkingTemperatureK
		r.EvaporationTimeYr = phys.EvaporationTimeYr
	case registry.CategoryGalaxy:
		r.HalfLightRadiusKpc = phys.HalfLightRadiusM / physics.Kiloparsec
		r.VelocityDispersionKm = phys.VelocityDispersionMS / 1e3
	case registry.CategoryStar:
		r.RadiusSolar = phys.RadiusM / physics.SolarRadius
		r.SurfaceTemperatureK = phys.SurfaceTemperatureK
		r.MainSequenceLifetimeYr = phys.MainSequenceLifetimeYr
	}

	if cfg.Binary.IsBinary {
		r.OrbitalSeparationAU = cfg.Binary.SeparationM / physics.AU
	}

	return r
}

// evolutionStage buckets an object by how many formation timescales it has
// lived through.
func evolutionStage(ageYr, formationYr float64) string {
	if formationYr <= 0 || ageYr <= 0 {
		return StageForming
	}
	switch ratio := ageYr / formationYr; {
	case ratio < 1:
		return StageForming
	case ratio < 10:
		return StageYoung
	case ratio < 1000:
		return StageMature
	default:
		return StageAncient
	}
}
