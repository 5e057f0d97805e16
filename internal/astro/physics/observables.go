package physics

import (
	"math"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

// Observables holds the instrument-facing signatures of one object as seen
// from the reference distance. Booleans combine the classification's
// baseline flags with instance-derived fluxes.
type Observables struct {
	FluxWm2           float64 `json:"flux_wm2"`
	ApparentMagnitude float64 `json:"apparent_magnitude"`

	XRayLuminosityW  float64 `json:"xray_luminosity_w,omitempty"`
	RadioLuminosityW float64 `json:"radio_luminosity_w,omitempty"`

	XRayDetectable    bool `json:"xray_detectable"`
	RadioDetectable   bool `json:"radio_detectable"`
	OpticalDetectable bool `json:"optical_detectable"`
	InfraredSource    bool `json:"infrared_source"`
	Variable          bool `json:"variable"`

	GWStrain        float64 `json:"gw_strain,omitempty"`
	GWDetectable    bool    `json:"gw_detectable"`
	MergerSignature bool    `json:"merger_signature"`
}

// closeBinarySeparationFactor defines the merger-signature threshold: a
// binary closer than this many combined Schwarzschild radii is flagged as
// merging.
const closeBinarySeparationFactor = 1000.0

// DeriveObservables computes the observables profile from the instance
// config, its physics profile and the classification baseline.
// referenceDistancePc is the observer distance.
func DeriveObservables(cfg *body.Config, phys *Profile, def *registry.TypeDefinition, referenceDistancePc float64) *Observables {
	distanceM := referenceDistancePc * Parsec

	var flux float64
	if distanceM > 0 {
		flux = phys.TotalLuminosityW / (4 * math.Pi * distanceM * distanceM)
	}

	var magnitude float64
	if flux > 0 {
		magnitude = -2.5 * math.Log10(flux/fluxZeroPoint)
	}

	// Band luminosities scaled off the dominant emission channels.
	xrayLum := 0.3*phys.DiskLuminosityW + 0.1*phys.AGNLuminosityW
	if def.Observables.XRaySource && def.Category == registry.CategoryStar {
		xrayLum += 0.01 * phys.TotalLuminosityW
	}
	radioLum := 1e-3*phys.JetPowerW + 1e-4*phys.AGNLuminosityW

	obs := &Observables{
		FluxWm2:           flux,
		ApparentMagnitude: magnitude,
		XRayLuminosityW:   xrayLum,
		RadioLuminosityW:  radioLum,
		OpticalDetectable: def.Observables.OpticalSource,
		InfraredSource:    def.Observables.InfraredSource,
		Variable:          def.Observables.VariableSource || cfg.Field(registry.FieldAccretionRate) > 0.5,
	}

	if distanceM > 0 {
		obs.XRayDetectable = def.Observables.XRaySource &&
			xrayLum/(4*math.Pi*distanceM*distanceM) > xrayFluxFloor
		obs.RadioDetectable = def.Observables.RadioSource &&
			radioLum/(4*math.Pi*distanceM*distanceM) > radioFluxFloor
	}

	// GW detectability is strictly strain-over-floor; the classification's
	// gravitational_wave_source flag is catalog metadata, not a bypass.
	if cfg.Binary.IsBinary {
		m1 := phys.MassKg
		m2 := cfg.Binary.CompanionMassSolar * SolarMass
		sep := cfg.Binary.SeparationM

		obs.GWStrain = GWStrain(m1, m2, sep, distanceM)
		obs.GWDetectable = obs.GWStrain > strainFloor

		combinedRs := SchwarzschildRadius(m1) + SchwarzschildRadius(m2)
		obs.MergerSignature = sep > 0 && sep < closeBinarySeparationFactor*combinedRs
	}

	return obs
}
