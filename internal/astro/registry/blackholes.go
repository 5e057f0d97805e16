package registry

// blackHoleFieldOrder is shared by every black hole classification: mass
// first (everything downstream scales from it), then the Kerr parameters,
// then the environment fields.
var blackHoleFieldOrder = []string{
	FieldMass,
	FieldSpin,
	FieldCharge,
	FieldAccretionRate,
	FieldEnvironmentDensity,
	FieldAge,
}

var blackHoleTypes = []TypeDefinition{
	{
		Key:         "stellar_mass",
		Category:    CategoryBlackHole,
		Name:        "Stellar-Mass Black Hole",
		Description: "Collapsed core of a massive star, typically found in X-ray binaries where it accretes from a companion.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 0.7, Max: 1.95, Log10: true}, // ~5 to ~90 solar masses
			FieldSpin:               {Min: 0, Max: 0.998},
			FieldCharge:             {Min: 0, Max: 0.01},
			FieldAccretionRate:      {Min: 0, Max: 1},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
			FieldAge:                {Min: 5, Max: 10.1, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"core_collapse_supernova",
			"failed_supernova_direct_collapse",
			"binary_neutron_star_merger",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.1,
			RadiativeEfficiency: 0.057,
			MagneticFieldT:      1e4,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			DominantHue:         "blue-white",
			ParticleDensityHint: 4000,
		},
		Discoverability: 0.9,
		ScientificValue: 6,
		DangerLevel:     7,
		ResourceValue:   3,
	},
	{
		Key:         "intermediate_mass",
		Category:    CategoryBlackHole,
		Name:        "Intermediate-Mass Black Hole",
		Description: "Black hole in the elusive hundred-to-hundred-thousand solar mass gap, candidates found in dense star clusters and dwarf galaxy nuclei.",
		Status:      StatusProbable,
		Ranges: map[string]Range{
			FieldMass:               {Min: 2, Max: 5, Log10: true},
			FieldSpin:               {Min: 0, Max: 0.95},
			FieldCharge:             {Min: 0, Max: 0.01},
			FieldAccretionRate:      {Min: 0, Max: 0.5},
			FieldEnvironmentDensity: {Min: 0.2, Max: 1},
			FieldAge:                {Min: 7, Max: 10.1, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"runaway_stellar_collisions",
			"hierarchical_black_hole_mergers",
			"population_iii_remnant",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.01,
			RadiativeEfficiency: 0.057,
			MagneticFieldT:      1e3,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			DominantHue:         "pale-violet",
			ParticleDensityHint: 5000,
		},
		Discoverability: 0.35,
		ScientificValue: 9,
		DangerLevel:     7,
		ResourceValue:   4,
	},
	{
		Key:         "supermassive",
		Category:    CategoryBlackHole,
		Name:        "Supermassive Black Hole",
		Description: "Million-to-billion solar mass giant anchoring a galactic nucleus, powering an active nucleus when fed.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 5, Max: 9.8, Log10: true},
			FieldSpin:               {Min: 0, Max: 0.998},
			FieldCharge:             {Min: 0, Max: 0.005},
			FieldAccretionRate:      {Min: 0, Max: 1},
			FieldEnvironmentDensity: {Min: 0.5, Max: 1},
			FieldAge:                {Min: 8, Max: 10.13, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"direct_collapse_of_gas_cloud",
			"heavy_seed_accretion",
			"galaxy_merger_growth",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.3,
			RadiativeEfficiency: 0.1,
			MagneticFieldT:      1,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			RadioSource:    true,
			InfraredSource: true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			RelativisticJets:    true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			ActiveNucleus:       true,
			DominantHue:         "amber",
			ParticleDensityHint: 12000,
		},
		Discoverability: 0.75,
		ScientificValue: 8,
		DangerLevel:     9,
		ResourceValue:   5,
	},
	{
		Key:         "ultramassive",
		Category:    CategoryBlackHole,
		Name:        "Ultramassive Black Hole",
		Description: "Beyond ten billion solar masses, found in the brightest cluster galaxies; sits near the theoretical ceiling for accretion growth.",
		Status:      StatusProbable,
		Ranges: map[string]Range{
			FieldMass:               {Min: 9.8, Max: 11, Log10: true},
			FieldSpin:               {Min: 0, Max: 0.9},
			FieldCharge:             {Min: 0, Max: 0.001},
			FieldAccretionRate:      {Min: 0, Max: 0.3},
			FieldEnvironmentDensity: {Min: 0.7, Max: 1},
			FieldAge:                {Min: 9.5, Max: 10.13, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"brightest_cluster_galaxy_cannibalism",
			"sustained_super_eddington_accretion",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.05,
			RadiativeEfficiency: 0.1,
			MagneticFieldT:      0.1,
		},
		Observables: ObservablesBaseline{
			XRaySource:  true,
			RadioSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			RelativisticJets:    true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			DominantHue:         "deep-red",
			ParticleDensityHint: 16000,
		},
		Discoverability: 0.15,
		ScientificValue: 9,
		DangerLevel:     10,
		ResourceValue:   6,
	},
	{
		Key:         "primordial",
		Category:    CategoryBlackHole,
		Name:        "Primordial Black Hole",
		Description: "Hypothetical relic of density fluctuations in the first second after the big bang; light enough for Hawking evaporation to matter.",
		Status:      StatusSpeculative,
		Ranges: map[string]Range{
			FieldMass:               {Min: -12, Max: 0, Log10: true},
			FieldSpin:               {Min: 0, Max: 0.5},
			FieldCharge:             {Min: 0, Max: 0.1},
			FieldAccretionRate:      {Min: 0, Max: 0.01},
			FieldEnvironmentDensity: {Min: 0, Max: 0.5},
			FieldAge:                {Min: 10.1, Max: 10.14, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"primordial_density_fluctuation",
			"cosmic_string_collapse",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.001,
			RadiativeEfficiency: 0.057,
			MagneticFieldT:      0,
		},
		Observables: ObservablesBaseline{
			VariableSource: true,
		},
		Visual: VisualFeatures{
			PhotonRing:          true,
			GravitationalLens:   true,
			DominantHue:         "white",
			ParticleDensityHint: 800,
		},
		Discoverability: 0.05,
		ScientificValue: 10,
		DangerLevel:     4,
		ResourceValue:   8,
	},
	{
		Key:         "kerr_like",
		Category:    CategoryBlackHole,
		Name:        "Near-Extremal Kerr Black Hole",
		Description: "Rapidly rotating black hole close to the extremal spin limit, with a pronounced ergosphere and strong frame dragging.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 0.9, Max: 9, Log10: true},
			FieldSpin:               {Min: 0.7, Max: 0.998},
			FieldCharge:             {Min: 0, Max: 0.01},
			FieldAccretionRate:      {Min: 0.1, Max: 1},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
			FieldAge:                {Min: 6, Max: 10.1, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"spin_up_by_prolonged_accretion",
			"aligned_binary_merger",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.5,
			RadiativeEfficiency: 0.3,
			MagneticFieldT:      5e3,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			RadioSource:    true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			RelativisticJets:    true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			DominantHue:         "electric-blue",
			ParticleDensityHint: 9000,
		},
		Discoverability: 0.5,
		ScientificValue: 8,
		DangerLevel:     8,
		ResourceValue:   7,
	},
	{
		Key:         "binary_merger_remnant",
		Category:    CategoryBlackHole,
		Name:        "Binary Merger Remnant",
		Description: "Freshly merged black hole still ringing down, carrying the recoil kick and spun-up state of its progenitor binary.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 1, Max: 9.9, Log10: true},
			FieldSpin:               {Min: 0.5, Max: 0.95},
			FieldCharge:             {Min: 0, Max: 0.005},
			FieldAccretionRate:      {Min: 0, Max: 0.2},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
			FieldAge:                {Min: 0, Max: 6, Log10: true},
		},
		FieldOrder: blackHoleFieldOrder,
		FormationMechanisms: []string{
			"compact_binary_coalescence",
			"hierarchical_triple_merger",
		},
		Physics: PhysicsBaseline{
			EddingtonRatio:      0.05,
			RadiativeEfficiency: 0.057,
			MagneticFieldT:      1e3,
		},
		Observables: ObservablesBaseline{
			XRaySource:              true,
			VariableSource:          true,
			GravitationalWaveSource: true,
		},
		Visual: VisualFeatures{
			AccretionDisk:       true,
			PhotonRing:          true,
			GravitationalLens:   true,
			EventHorizonShadow:  true,
			TidalStreams:        true,
			DominantHue:         "violet",
			ParticleDensityHint: 7000,
		},
		Discoverability: 0.3,
		ScientificValue: 9,
		DangerLevel:     8,
		ResourceValue:   4,
	},
}
