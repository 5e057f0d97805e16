package body

// Settings carries the knobs that used to live in a process-wide quality
// singleton. Every generation call receives an explicit copy; nothing in
// the engine reads globals.
type Settings struct {
	// QualityLevel is forwarded to the statistics report for the renderer.
	QualityLevel string

	// RadiatedMassFraction is the fraction of the secondary's mass radiated
	// away as gravitational waves in a merger.
	RadiatedMassFraction float64

	// ReferenceDistancePc is the observer distance used for flux, apparent
	// magnitude and strain amplitudes.
	ReferenceDistancePc float64
}

// DefaultSettings mirrors the engine's documented defaults: 5% radiated
// mass and a 1 Mpc reference observer.
func DefaultSettings() Settings {
	return Settings{
		QualityLevel:         "high",
		RadiatedMassFraction: 0.05,
		ReferenceDistancePc:  1e6,
	}
}
