package physics

// Physical constants (SI) and unit conversions used by the derivers.
const (
	G               = 6.6743e-11     // gravitational constant, m^3 kg^-1 s^-2
	C               = 2.99792458e8   // speed of light, m/s
	Hbar            = 1.054571817e-34
	Boltzmann       = 1.380649e-23
	StefanBoltzmann = 5.670374419e-8
	ProtonMass      = 1.67262192369e-27
	ThomsonCross    = 6.6524587321e-29
	Mu0             = 1.25663706212e-6

	SolarMass       = 1.98892e30 // kg
	SolarRadius     = 6.957e8    // m
	SolarLuminosity = 3.828e26   // W

	Parsec     = 3.0856775814913673e16 // m
	Kiloparsec = 1e3 * Parsec
	AU         = 1.495978707e11
	Year       = 3.1557e7 // Julian year, s
)

// Bolometric flux zero point for apparent magnitudes, W/m^2.
const fluxZeroPoint = 2.518e-8

// Detection floors for the observables deriver. These stand in for
// instrument sensitivity; the renderer treats the resulting booleans as
// authoritative.
const (
	xrayFluxFloor  = 1e-18 // W/m^2
	radioFluxFloor = 1e-22 // W/m^2
	strainFloor    = 1e-23 // dimensionless GW strain
)
