// Package registry holds the closed classification registry: the static
// type definitions every generation call samples from. The tables are
// assembled once at init and never mutated afterwards; callers treat every
// returned definition as read-only.
package registry

// Category groups classifications by the physics that applies to them.
type Category string

const (
	CategoryBlackHole Category = "black_hole"
	CategoryGalaxy    Category = "galaxy"
	CategoryStar      Category = "star"
)

// ObservationalStatus records how well-established a classification is.
type ObservationalStatus string

const (
	StatusConfirmed   ObservationalStatus = "confirmed"
	StatusProbable    ObservationalStatus = "probable"
	StatusTheoretical ObservationalStatus = "theoretical"
	StatusSpeculative ObservationalStatus = "speculative"
)

// Sampled field names. Which fields a classification declares, and the order
// they are drawn in, is fixed by its FieldOrder so that a given seed always
// produces the same instance.
const (
	FieldMass               = "mass"                // solar masses, log10-scaled range
	FieldSpin               = "spin"                // dimensionless a*, 0..0.998
	FieldCharge             = "charge"              // Q as a fraction of the extremal charge
	FieldAccretionRate      = "accretion_rate"      // Eddington units
	FieldAge                = "age"                 // years, log10-scaled range
	FieldEnvironmentDensity = "environment_density" // relative crowding of the local field, 0..1
	FieldTemperature        = "temperature"         // kelvin, surface/effective
	FieldSize               = "size"                // kiloparsec, log10-scaled range
	FieldStarFormationRate  = "star_formation_rate" // solar masses per year, log10-scaled range
	FieldMetallicity        = "metallicity"         // Z relative to solar
)

// Range declares the sampling bounds for one field. When Log10 is set the
// bounds are base-10 exponents and the field is drawn with the log-scaled
// sampler; the flag is part of the schema, not inferred from the values.
type Range struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Log10 bool    `json:"log10"`
}

// PhysicsBaseline carries the per-classification scalars the derivers need
// beyond the sampled fields. Fields that don't apply to a category are zero.
type PhysicsBaseline struct {
	EddingtonRatio      float64 `json:"eddington_ratio"`      // typical luminosity scale for the class
	RadiativeEfficiency float64 `json:"radiative_efficiency"` // accretion-to-radiation conversion
	MagneticFieldT      float64 `json:"magnetic_field_t"`     // characteristic field, tesla
	SersicIndex         float64 `json:"sersic_index"`         // light-profile shape, galaxies
	DarkMatterFraction  float64 `json:"dark_matter_fraction"` // of total mass, galaxies
	GasFraction         float64 `json:"gas_fraction"`         // of baryonic mass, galaxies
}

// ObservablesBaseline declares which signatures a classification shows by
// default; the derivers refine these with instance-specific scalars.
type ObservablesBaseline struct {
	XRaySource              bool `json:"xray_source"`
	RadioSource             bool `json:"radio_source"`
	OpticalSource           bool `json:"optical_source"`
	InfraredSource          bool `json:"infrared_source"`
	VariableSource          bool `json:"variable_source"`
	GravitationalWaveSource bool `json:"gravitational_wave_source"`
}

// VisualFeatures is the feature template handed to the rendering
// collaborator. The engine never interprets these flags; it only copies
// them into each generated instance.
type VisualFeatures struct {
	AccretionDisk       bool   `json:"accretion_disk"`
	RelativisticJets    bool   `json:"relativistic_jets"`
	PhotonRing          bool   `json:"photon_ring"`
	GravitationalLens   bool   `json:"gravitational_lens"`
	EventHorizonShadow  bool   `json:"event_horizon_shadow"`
	SpiralArms          bool   `json:"spiral_arms"`
	CentralBar          bool   `json:"central_bar"`
	DustLanes           bool   `json:"dust_lanes"`
	ActiveNucleus       bool   `json:"active_nucleus"`
	StellarSurface      bool   `json:"stellar_surface"`
	TidalStreams        bool   `json:"tidal_streams"`
	DominantHue         string `json:"dominant_hue"`
	ParticleDensityHint int    `json:"particle_density_hint"` // renderer particle budget, carried through unchanged
}

// TypeDefinition is the static template for one classification.
type TypeDefinition struct {
	Key         string              `json:"key"`
	Category    Category            `json:"category"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      ObservationalStatus `json:"status"`

	// Ranges declares the sampling bounds for every field in FieldOrder.
	Ranges map[string]Range `json:"ranges"`

	// FieldOrder fixes the order fields consume RNG draws. Changing it
	// changes every instance a seed produces, so it is append-only.
	FieldOrder []string `json:"field_order"`

	FormationMechanisms []string `json:"formation_mechanisms"`

	Physics     PhysicsBaseline     `json:"physics"`
	Observables ObservablesBaseline `json:"observables"`
	Visual      VisualFeatures      `json:"visual"`

	// Discoverability weights random classification selection, 0..1.
	Discoverability float64 `json:"discoverability"`

	ScientificValue int `json:"scientific_value"` // 1..10
	DangerLevel     int `json:"danger_level"`     // 1..10
	ResourceValue   int `json:"resource_value"`   // 1..10
}
