package physics

import (
	"math"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

const (
	// Main-sequence lifetime of the sun, years, with the -2.5 mass slope.
	solarLifetimeYr = 1e10
	msLifetimeSlope = -2.5
)

func deriveStar(cfg *body.Config, def *registry.TypeDefinition) *Profile {
	massSolar := cfg.MassSolar()
	massKg := massSolar * SolarMass
	surfaceTemp := cfg.Field(registry.FieldTemperature)

	radius := stellarRadius(def.Key, massSolar)

	// Luminosity follows directly from the sampled surface temperature and
	// the mass-derived radius, so the three stay mutually consistent.
	luminosity := 4 * math.Pi * radius * radius * StefanBoltzmann * math.Pow(surfaceTemp, 4)

	var gravity, escape float64
	if radius > 0 {
		gravity = G * massKg / (radius * radius)
		escape = math.Sqrt(2 * G * massKg / radius)
	}

	var lifetime float64
	if massSolar > 0 {
		lifetime = solarLifetimeYr * math.Pow(massSolar, msLifetimeSlope)
	}

	var formation float64
	if massSolar > 0 {
		// Kelvin–Helmholtz style contraction: heavier stars settle faster.
		formation = 1e7 * math.Pow(massSolar, -1.5)
	}

	return &Profile{
		MassKg:                 massKg,
		RadiusM:                radius,
		SurfaceTemperatureK:    surfaceTemp,
		TotalLuminosityW:       luminosity,
		MainSequenceLifetimeYr: lifetime,
		SurfaceGravityMS2:      gravity,
		MagneticFieldT:         def.Physics.MagneticFieldT,
		EscapeVelocityMS:       escape,
		FormationTimescaleYr:   formation,
	}
}

// stellarRadius applies the mass–radius relation appropriate to the
// classification: degenerate remnants shrink with mass, ordinary stars grow
// with it.
func stellarRadius(key string, massSolar float64) float64 {
	if massSolar <= 0 {
		return 0
	}

	switch key {
	case "white_dwarf":
		// Degenerate matter: R ∝ M^(-1/3) around an Earth-sized 0.6 M_sun dwarf.
		return 0.0126 * SolarRadius * math.Pow(massSolar/0.6, -1.0/3.0)
	case "neutron_star", "magnetar":
		// ~12 km for a canonical 1.4 M_sun star, shrinking slowly with mass.
		return 12e3 * math.Cbrt(1.4/massSolar)
	case "red_giant":
		// Swollen envelope: tens to hundreds of solar radii.
		return 50 * SolarRadius * math.Pow(massSolar, 0.5)
	default:
		// Main-sequence mass–radius relation, broken at a solar mass.
		if massSolar < 1 {
			return SolarRadius * math.Pow(massSolar, 0.8)
		}
		return SolarRadius * math.Pow(massSolar, 0.57)
	}
}
