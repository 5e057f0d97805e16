package physics

import (
	"math"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

// Scaling-relation constants for extended objects. Profile shapes stay
// scalar descriptors here; rasterizing them is the renderer's problem.
const (
	// Kennicutt calibration: infrared luminosity per unit star formation
	// rate, W per (solar mass / yr).
	sfrLuminosityScale = 2.2e36

	// Stellar mass-to-light ratio in solar units for an evolved population.
	stellarMassToLight = 3.0

	// Half-light to exponential scale length for a Sersic n=1 disc.
	discScaleRatio = 1.678

	// M–sigma normalization: velocity dispersion of a 1e11 solar mass
	// spheroid, m/s, with the Faber–Jackson quarter-power slope.
	sigmaAt1e11   = 2.0e5
	sigmaSlope    = 0.25
	sigmaMassNorm = 1e11

	// Central black hole mass as a fraction of stellar mass.
	centralBHFraction = 1.5e-3

	galaxyFormationTimescaleYr = 2e9
)

func deriveGalaxy(cfg *body.Config, def *registry.TypeDefinition) *Profile {
	stellarMassSolar := cfg.MassSolar()
	massKg := stellarMassSolar * SolarMass

	halfLight := cfg.Field(registry.FieldSize) * Kiloparsec
	sfr := cfg.Field(registry.FieldStarFormationRate)

	// Faber–Jackson style dispersion from the stellar mass.
	var sigma float64
	if stellarMassSolar > 0 {
		sigma = sigmaAt1e11 * math.Pow(stellarMassSolar/sigmaMassNorm, sigmaSlope)
	}

	stellarLum := stellarMassSolar / stellarMassToLight * SolarLuminosity
	sfrLum := sfr * sfrLuminosityScale

	// The nuclear engine: an M–sigma scaled central black hole radiating at
	// the class baseline Eddington ratio.
	centralBHKg := centralBHFraction * massKg
	agnLum := def.Physics.EddingtonRatio * EddingtonLuminosity(centralBHKg)

	// Escape velocity from the half-light radius, counting the dark halo.
	var escape float64
	dmFraction := def.Physics.DarkMatterFraction
	if halfLight > 0 && dmFraction < 1 {
		totalMassKg := massKg / (1 - dmFraction)
		escape = math.Sqrt(2 * G * totalMassKg / halfLight)
	}

	return &Profile{
		MassKg:               massKg,
		HalfLightRadiusM:     halfLight,
		ScaleLengthM:         halfLight / discScaleRatio,
		SersicIndex:          def.Physics.SersicIndex,
		VelocityDispersionMS: sigma,
		StellarLuminosityW:   stellarLum,
		SFRLuminosityW:       sfrLum,
		AGNLuminosityW:       agnLum,
		CentralBlackHoleKg:   centralBHKg,
		DarkMatterFraction:   dmFraction,
		TotalLuminosityW:     stellarLum + sfrLum + agnLum,
		EscapeVelocityMS:     escape,
		FormationTimescaleYr: galaxyFormationTimescaleYr,
	}
}
