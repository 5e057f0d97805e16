package physics

import "math"

// Relational quantities for composite systems. Masses are in kg,
// separations in m.

// OrbitalPeriod returns the Keplerian period in seconds for two point
// masses at the given separation. Positive and finite whenever the combined
// mass and separation are positive.
func OrbitalPeriod(m1Kg, m2Kg, separationM float64) float64 {
	total := m1Kg + m2Kg
	if total <= 0 || separationM <= 0 {
		return 0
	}
	return 2 * math.Pi * math.Sqrt(math.Pow(separationM, 3)/(G*total))
}

// InteractionStrength returns the mutual gravitational pull G·m1·m2/d², in
// newtons. Used as the relational "interaction strength" of a pair.
func InteractionStrength(m1Kg, m2Kg, separationM float64) float64 {
	if separationM <= 0 {
		return 0
	}
	return G * m1Kg * m2Kg / (separationM * separationM)
}

// ChirpMass returns (m1·m2)^(3/5)/(m1+m2)^(1/5) in kg.
func ChirpMass(m1Kg, m2Kg float64) float64 {
	total := m1Kg + m2Kg
	if total <= 0 {
		return 0
	}
	return math.Pow(m1Kg*m2Kg, 0.6) / math.Pow(total, 0.2)
}

// GWStrain returns the quadrupole strain amplitude of a circular binary
// seen from the given distance. The gravitational-wave frequency is twice
// the orbital frequency.
func GWStrain(m1Kg, m2Kg, separationM, distanceM float64) float64 {
	if distanceM <= 0 || separationM <= 0 {
		return 0
	}

	period := OrbitalPeriod(m1Kg, m2Kg, separationM)
	if period <= 0 {
		return 0
	}
	fGW := 2 / period

	mc := ChirpMass(m1Kg, m2Kg)
	gm := G * mc / (C * C)

	return 4 / distanceM * math.Pow(gm, 5.0/3.0) * math.Pow(math.Pi*fGW/C, 2.0/3.0)
}

// CoalescenceTime returns the Peters inspiral time in years for a circular
// binary: (5/256)·c⁵a⁴/(G³·m1·m2·(m1+m2)).
func CoalescenceTime(m1Kg, m2Kg, separationM float64) float64 {
	if m1Kg <= 0 || m2Kg <= 0 || separationM <= 0 {
		return 0
	}

	seconds := 5.0 / 256.0 * math.Pow(C, 5) * math.Pow(separationM, 4) /
		(math.Pow(G, 3) * m1Kg * m2Kg * (m1Kg + m2Kg))
	return seconds / Year
}
