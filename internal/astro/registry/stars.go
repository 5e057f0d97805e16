package registry

// stellarFieldOrder is shared by every stellar classification. Spin here is
// rotation as a fraction of the breakup rate.
var stellarFieldOrder = []string{
	FieldMass,
	FieldTemperature,
	FieldSpin,
	FieldMetallicity,
	FieldAge,
	FieldEnvironmentDensity,
}

var stellarTypes = []TypeDefinition{
	{
		Key:         "main_sequence",
		Category:    CategoryStar,
		Name:        "Main-Sequence Star",
		Description: "Hydrogen-burning star in equilibrium, from cool red dwarfs up to hot O-type giants.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: -1.1, Max: 2.1, Log10: true}, // ~0.08 to ~125 solar masses
			FieldTemperature:        {Min: 2400, Max: 50000},
			FieldSpin:               {Min: 0, Max: 0.7},
			FieldMetallicity:        {Min: 0.05, Max: 2.5},
			FieldAge:                {Min: 6, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: stellarFieldOrder,
		FormationMechanisms: []string{
			"molecular_cloud_collapse",
			"triggered_formation_in_spiral_arm",
		},
		Physics: PhysicsBaseline{
			MagneticFieldT: 0.01,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
		},
		Visual: VisualFeatures{
			StellarSurface:      true,
			DominantHue:         "yellow-white",
			ParticleDensityHint: 2000,
		},
		Discoverability: 0.95,
		ScientificValue: 3,
		DangerLevel:     2,
		ResourceValue:   6,
	},
	{
		Key:         "red_giant",
		Category:    CategoryStar,
		Name:        "Red Giant",
		Description: "Evolved star that has left the main sequence, its envelope swollen to hundreds of solar radii while the core contracts.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: -0.3, Max: 0.95, Log10: true},
			FieldTemperature:        {Min: 3000, Max: 5000},
			FieldSpin:               {Min: 0, Max: 0.2},
			FieldMetallicity:        {Min: 0.1, Max: 2},
			FieldAge:                {Min: 8.5, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: stellarFieldOrder,
		FormationMechanisms: []string{
			"core_hydrogen_exhaustion",
			"shell_burning_expansion",
		},
		Physics: PhysicsBaseline{
			MagneticFieldT: 0.001,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			StellarSurface:      true,
			DominantHue:         "deep-orange",
			ParticleDensityHint: 3500,
		},
		Discoverability: 0.8,
		ScientificValue: 4,
		DangerLevel:     3,
		ResourceValue:   5,
	},
	{
		Key:         "white_dwarf",
		Category:    CategoryStar,
		Name:        "White Dwarf",
		Description: "Earth-sized degenerate remnant of a low-mass star, slowly radiating away its residual heat.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: -0.7, Max: 0.15, Log10: true}, // up to the Chandrasekhar limit
			FieldTemperature:        {Min: 4000, Max: 150000},
			FieldSpin:               {Min: 0, Max: 0.3},
			FieldMetallicity:        {Min: 0.1, Max: 2},
			FieldAge:                {Min: 7, Max: 10.13, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: stellarFieldOrder,
		FormationMechanisms: []string{
			"planetary_nebula_ejection",
			"binary_envelope_stripping",
		},
		Physics: PhysicsBaseline{
			MagneticFieldT: 100,
		},
		Observables: ObservablesBaseline{
			OpticalSource: true,
			XRaySource:    true,
		},
		Visual: VisualFeatures{
			StellarSurface:      true,
			DominantHue:         "ice-blue",
			ParticleDensityHint: 1200,
		},
		Discoverability: 0.6,
		ScientificValue: 5,
		DangerLevel:     2,
		ResourceValue:   7,
	},
	{
		Key:         "neutron_star",
		Category:    CategoryStar,
		Name:        "Neutron Star",
		Description: "City-sized remnant at nuclear density, often seen as a pulsar sweeping its radio beam across the line of sight.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 0.04, Max: 0.33, Log10: true}, // ~1.1 to ~2.16 solar masses
			FieldTemperature:        {Min: 1e5, Max: 1e6},
			FieldSpin:               {Min: 0, Max: 0.7},
			FieldMetallicity:        {Min: 0.1, Max: 2},
			FieldAge:                {Min: 3, Max: 10, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: stellarFieldOrder,
		FormationMechanisms: []string{
			"core_collapse_supernova",
			"accretion_induced_collapse",
		},
		Physics: PhysicsBaseline{
			MagneticFieldT: 1e8,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			RadioSource:    true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			StellarSurface:      true,
			RelativisticJets:    true,
			DominantHue:         "violet-white",
			ParticleDensityHint: 2500,
		},
		Discoverability: 0.45,
		ScientificValue: 8,
		DangerLevel:     7,
		ResourceValue:   8,
	},
	{
		Key:         "magnetar",
		Category:    CategoryStar,
		Name:        "Magnetar",
		Description: "Neutron star with a magnetic field a thousand times stronger still, powering giant gamma-ray flares as the field decays.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 0.04, Max: 0.3, Log10: true},
			FieldTemperature:        {Min: 3e5, Max: 2e6},
			FieldSpin:               {Min: 0, Max: 0.3},
			FieldMetallicity:        {Min: 0.1, Max: 2},
			FieldAge:                {Min: 2, Max: 5, Log10: true}, // field decays within ~10^5 years
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: stellarFieldOrder,
		FormationMechanisms: []string{
			"dynamo_amplified_core_collapse",
			"neutron_star_merger_remnant",
		},
		Physics: PhysicsBaseline{
			MagneticFieldT: 1e11,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			StellarSurface:      true,
			RelativisticJets:    true,
			DominantHue:         "hard-white",
			ParticleDensityHint: 3000,
		},
		Discoverability: 0.1,
		ScientificValue: 9,
		DangerLevel:     9,
		ResourceValue:   6,
	},
}
