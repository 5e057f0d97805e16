package physics

import (
	"math"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/registry"
)

// SchwarzschildRadius returns 2GM/c^2 for a mass in kg.
func SchwarzschildRadius(massKg float64) float64 {
	return 2 * G * massKg / (C * C)
}

// ISCORadius returns the innermost stable circular orbit radius for mass in
// kg and dimensionless spin, via the Bardeen–Press–Teukolsky polynomial.
// The retrograde branch is used: it keeps the disc edge outside the photon
// sphere for every spin up to the 0.998 limit, which the radius-ordering
// contract relies on.
func ISCORadius(massKg, spin float64) float64 {
	rg := G * massKg / (C * C)

	a2 := spin * spin
	z1 := 1 + math.Cbrt(1-a2)*(math.Cbrt(1+spin)+math.Cbrt(1-spin))
	z2 := math.Sqrt(3*a2 + z1*z1)

	return rg * (3 + z2 + math.Sqrt((3-z1)*(3+z1+2*z2)))
}

// OuterHorizonRadius returns the Kerr outer horizon radius. At spin 0 it
// equals the Schwarzschild radius.
func OuterHorizonRadius(massKg, spin float64) float64 {
	rg := G * massKg / (C * C)

	discriminant := 1 - spin*spin
	if discriminant < 0 {
		discriminant = 0 // beyond-extremal spin never samples, but don't NaN on it
	}
	return rg * (1 + math.Sqrt(discriminant))
}

// ErgosphereRadius returns the characteristic ergosphere radius using the
// equatorial-bulge approximation r_s·(1 + a²/2). It collapses exactly to
// the Schwarzschild radius at spin zero and grows monotonically with spin.
func ErgosphereRadius(massKg, spin float64) float64 {
	return SchwarzschildRadius(massKg) * (1 + 0.5*spin*spin)
}

// HawkingTemperature returns ħc³/(8πGMk_B) in kelvin, zero for zero mass.
func HawkingTemperature(massKg float64) float64 {
	if massKg <= 0 {
		return 0
	}
	return Hbar * C * C * C / (8 * math.Pi * G * massKg * Boltzmann)
}

// EvaporationTime returns the Hawking evaporation timescale in years,
// 5120·πG²M³/(ħc⁴).
func EvaporationTime(massKg float64) float64 {
	seconds := 5120 * math.Pi * G * G * math.Pow(massKg, 3) / (Hbar * math.Pow(C, 4))
	return seconds / Year
}

// EddingtonLuminosity returns 4πGMm_p·c/σ_T in watts.
func EddingtonLuminosity(massKg float64) float64 {
	return 4 * math.Pi * G * massKg * ProtonMass * C / ThomsonCross
}

func deriveBlackHole(cfg *body.Config, def *registry.TypeDefinition) *Profile {
	massKg := cfg.MassSolar() * SolarMass
	spin := cfg.Spin()
	accretionRate := cfg.Field(registry.FieldAccretionRate)

	rs := SchwarzschildRadius(massKg)
	horizon := OuterHorizonRadius(massKg, spin)
	isco := ISCORadius(massKg, spin)

	lEdd := EddingtonLuminosity(massKg)
	lDisk := accretionRate * lEdd

	// Thin-disc effective temperature at the inner edge.
	var diskTemp float64
	if lDisk > 0 && isco > 0 {
		diskTemp = math.Pow(lDisk/(4*math.Pi*StefanBoltzmann*isco*isco), 0.25)
	}

	// Blandford–Znajek scaling: spin-squared times the magnetic energy flux
	// through the horizon-scale area.
	var jetPower float64
	if b := def.Physics.MagneticFieldT; b > 0 && spin > 0 && horizon > 0 {
		jetPower = spin * spin * (b * b / (2 * Mu0)) * math.Pi * rs * rs * C * (rs / horizon)
	}

	var escape float64
	if isco > 0 {
		escape = math.Sqrt(2 * G * massKg / isco)
	}

	return &Profile{
		MassKg:               massKg,
		SchwarzschildRadiusM: rs,
		PhotonSphereRadiusM:  1.5 * rs,
		OuterHorizonRadiusM:  horizon,
		ISCORadiusM:          isco,
		ErgosphereRadiusM:    ErgosphereRadius(massKg, spin),
		HawkingTemperatureK:  HawkingTemperature(massKg),
		EvaporationTimeYr:    EvaporationTime(massKg),
		EddingtonLuminosityW: lEdd,
		DiskLuminosityW:      lDisk,
		DiskTemperatureK:     diskTemp,
		JetPowerW:            jetPower,
		TidalRadiusM:         tidalRadius(massKg),
		MagneticFieldT:       def.Physics.MagneticFieldT,
		TotalLuminosityW:     lDisk + jetPower,
		EscapeVelocityMS:     escape,
		FormationTimescaleYr: 1e7,
	}
}

// tidalRadius returns the distance at which a sun-like star is disrupted,
// R_sun·(M/M_sun)^(1/3).
func tidalRadius(massKg float64) float64 {
	if massKg <= 0 {
		return 0
	}
	return SolarRadius * math.Cbrt(massKg/SolarMass)
}
