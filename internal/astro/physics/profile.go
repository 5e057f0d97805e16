package physics

// Profile holds the derived physical quantities of one object. Fields are
// grouped by category; quantities that don't apply to an object's category
// stay zero and are omitted from JSON. A Profile is pure function output:
// recompute it rather than mutate it.
type Profile struct {
	// Common
	MassKg               float64 `json:"mass_kg"`
	TotalLuminosityW     float64 `json:"total_luminosity_w,omitempty"`
	EscapeVelocityMS     float64 `json:"escape_velocity_ms,omitempty"`
	FormationTimescaleYr float64 `json:"formation_timescale_yr,omitempty"`

	// Compact objects
	SchwarzschildRadiusM float64 `json:"schwarzschild_radius_m,omitempty"`
	PhotonSphereRadiusM  float64 `json:"photon_sphere_radius_m,omitempty"`
	OuterHorizonRadiusM  float64 `json:"outer_horizon_radius_m,omitempty"`
	ISCORadiusM          float64 `json:"isco_radius_m,omitempty"`
	ErgosphereRadiusM    float64 `json:"ergosphere_radius_m,omitempty"`
	HawkingTemperatureK  float64 `json:"hawking_temperature_k,omitempty"`
	EvaporationTimeYr    float64 `json:"evaporation_time_yr,omitempty"`
	EddingtonLuminosityW float64 `json:"eddington_luminosity_w,omitempty"`
	DiskLuminosityW      float64 `json:"disk_luminosity_w,omitempty"`
	DiskTemperatureK     float64 `json:"disk_temperature_k,omitempty"`
	JetPowerW            float64 `json:"jet_power_w,omitempty"`
	TidalRadiusM         float64 `json:"tidal_radius_m,omitempty"`

	// Galaxies
	HalfLightRadiusM     float64 `json:"half_light_radius_m,omitempty"`
	ScaleLengthM         float64 `json:"scale_length_m,omitempty"`
	SersicIndex          float64 `json:"sersic_index,omitempty"`
	VelocityDispersionMS float64 `json:"velocity_dispersion_ms,omitempty"`
	StellarLuminosityW   float64 `json:"stellar_luminosity_w,omitempty"`
	SFRLuminosityW       float64 `json:"sfr_luminosity_w,omitempty"`
	AGNLuminosityW       float64 `json:"agn_luminosity_w,omitempty"`
	CentralBlackHoleKg   float64 `json:"central_black_hole_kg,omitempty"`
	DarkMatterFraction   float64 `json:"dark_matter_fraction,omitempty"`

	// Stars
	RadiusM                float64 `json:"radius_m,omitempty"`
	SurfaceTemperatureK    float64 `json:"surface_temperature_k,omitempty"`
	MainSequenceLifetimeYr float64 `json:"main_sequence_lifetime_yr,omitempty"`
	SurfaceGravityMS2      float64 `json:"surface_gravity_ms2,omitempty"`
	MagneticFieldT         float64 `json:"magnetic_field_t,omitempty"`
}
