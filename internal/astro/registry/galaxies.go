package registry

// galaxyFieldOrder is shared by every galaxy classification.
var galaxyFieldOrder = []string{
	FieldMass,
	FieldSize,
	FieldStarFormationRate,
	FieldMetallicity,
	FieldAge,
	FieldEnvironmentDensity,
}

var galaxyTypes = []TypeDefinition{
	{
		Key:         "spiral",
		Category:    CategoryGalaxy,
		Name:        "Spiral Galaxy",
		Description: "Rotating disc of stars and gas with well-defined spiral arms winding out from a central bulge.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 9.5, Max: 11.5, Log10: true}, // stellar mass, solar masses
			FieldSize:               {Min: 0.5, Max: 1.7, Log10: true},  // half-light radius, kpc
			FieldStarFormationRate:  {Min: -0.5, Max: 1.3, Log10: true},
			FieldMetallicity:        {Min: 0.5, Max: 1.5},
			FieldAge:                {Min: 9.5, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 0.7},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"cold_gas_disc_settling",
			"quiet_merger_history",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        1.2,
			DarkMatterFraction: 0.85,
			GasFraction:        0.15,
			EddingtonRatio:     0.001, // central engine mostly quiescent
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
			RadioSource:    true,
		},
		Visual: VisualFeatures{
			SpiralArms:          true,
			DustLanes:           true,
			DominantHue:         "blue-white",
			ParticleDensityHint: 20000,
		},
		Discoverability: 0.85,
		ScientificValue: 5,
		DangerLevel:     2,
		ResourceValue:   7,
	},
	{
		Key:         "barred_spiral",
		Category:    CategoryGalaxy,
		Name:        "Barred Spiral Galaxy",
		Description: "Spiral with a central stellar bar funnelling gas inward, fuelling bulge growth and episodic nuclear activity.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 9.5, Max: 11.5, Log10: true},
			FieldSize:               {Min: 0.5, Max: 1.7, Log10: true},
			FieldStarFormationRate:  {Min: -0.5, Max: 1.5, Log10: true},
			FieldMetallicity:        {Min: 0.6, Max: 1.6},
			FieldAge:                {Min: 9.5, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 0.7},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"disc_instability_bar_formation",
			"tidal_bar_excitation",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        1.5,
			DarkMatterFraction: 0.85,
			GasFraction:        0.18,
			EddingtonRatio:     0.005,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
			RadioSource:    true,
		},
		Visual: VisualFeatures{
			SpiralArms:          true,
			CentralBar:          true,
			DustLanes:           true,
			DominantHue:         "gold",
			ParticleDensityHint: 22000,
		},
		Discoverability: 0.8,
		ScientificValue: 5,
		DangerLevel:     2,
		ResourceValue:   7,
	},
	{
		Key:         "elliptical",
		Category:    CategoryGalaxy,
		Name:        "Elliptical Galaxy",
		Description: "Pressure-supported spheroid of old stars with little gas, the usual end state of major galaxy mergers.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 10, Max: 12.3, Log10: true},
			FieldSize:               {Min: 0.3, Max: 2, Log10: true},
			FieldStarFormationRate:  {Min: -3, Max: -0.5, Log10: true},
			FieldMetallicity:        {Min: 0.8, Max: 2.5},
			FieldAge:                {Min: 9.9, Max: 10.13, Log10: true},
			FieldEnvironmentDensity: {Min: 0.3, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"major_merger",
			"monolithic_collapse",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        4,
			DarkMatterFraction: 0.8,
			GasFraction:        0.02,
			EddingtonRatio:     0.0001,
		},
		Observables: ObservablesBaseline{
			OpticalSource: true,
			RadioSource:   true,
			XRaySource:    true, // hot halo
		},
		Visual: VisualFeatures{
			DominantHue:         "red-orange",
			ParticleDensityHint: 15000,
		},
		Discoverability: 0.7,
		ScientificValue: 4,
		DangerLevel:     1,
		ResourceValue:   5,
	},
	{
		Key:         "lenticular",
		Category:    CategoryGalaxy,
		Name:        "Lenticular Galaxy",
		Description: "Disc galaxy that has exhausted or lost its gas: spiral structure faded, leaving a smooth lens-shaped disc and bulge.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 9.8, Max: 11.7, Log10: true},
			FieldSize:               {Min: 0.4, Max: 1.6, Log10: true},
			FieldStarFormationRate:  {Min: -2.5, Max: 0, Log10: true},
			FieldMetallicity:        {Min: 0.7, Max: 1.8},
			FieldAge:                {Min: 9.8, Max: 10.12, Log10: true},
			FieldEnvironmentDensity: {Min: 0.3, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"ram_pressure_stripping",
			"starvation_in_cluster_halo",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        2.5,
			DarkMatterFraction: 0.8,
			GasFraction:        0.05,
			EddingtonRatio:     0.0005,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
		},
		Visual: VisualFeatures{
			DustLanes:           true,
			DominantHue:         "pale-yellow",
			ParticleDensityHint: 14000,
		},
		Discoverability: 0.4,
		ScientificValue: 4,
		DangerLevel:     1,
		ResourceValue:   5,
	},
	{
		Key:         "irregular",
		Category:    CategoryGalaxy,
		Name:        "Irregular Galaxy",
		Description: "Chaotic, low-mass galaxy without coherent structure, often shaped by tidal interaction with a larger neighbour.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 7.5, Max: 10, Log10: true},
			FieldSize:               {Min: -0.3, Max: 1, Log10: true},
			FieldStarFormationRate:  {Min: -2, Max: 0.8, Log10: true},
			FieldMetallicity:        {Min: 0.1, Max: 0.8},
			FieldAge:                {Min: 9, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"tidal_disruption",
			"slow_inefficient_collapse",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        0.8,
			DarkMatterFraction: 0.9,
			GasFraction:        0.4,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
		},
		Visual: VisualFeatures{
			DustLanes:           true,
			TidalStreams:        true,
			DominantHue:         "cyan",
			ParticleDensityHint: 8000,
		},
		Discoverability: 0.6,
		ScientificValue: 4,
		DangerLevel:     1,
		ResourceValue:   4,
	},
	{
		Key:         "dwarf_spheroidal",
		Category:    CategoryGalaxy,
		Name:        "Dwarf Spheroidal Galaxy",
		Description: "Faint, diffuse satellite dominated by dark matter, with an ancient stellar population and almost no gas.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 5.5, Max: 8, Log10: true},
			FieldSize:               {Min: -1, Max: 0, Log10: true},
			FieldStarFormationRate:  {Min: -5, Max: -2.5, Log10: true},
			FieldMetallicity:        {Min: 0.01, Max: 0.3},
			FieldAge:                {Min: 10, Max: 10.13, Log10: true},
			FieldEnvironmentDensity: {Min: 0.2, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"reionization_quenched_halo",
			"tidal_stirring_of_dwarf_disc",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        0.7,
			DarkMatterFraction: 0.98,
			GasFraction:        0.005,
		},
		Observables: ObservablesBaseline{
			OpticalSource: true,
		},
		Visual: VisualFeatures{
			DominantHue:         "faint-silver",
			ParticleDensityHint: 3000,
		},
		Discoverability: 0.2,
		ScientificValue: 7,
		DangerLevel:     1,
		ResourceValue:   2,
	},
	{
		Key:         "starburst",
		Category:    CategoryGalaxy,
		Name:        "Starburst Galaxy",
		Description: "Galaxy caught in an episode of star formation far above the main sequence, usually triggered by an interaction.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 9, Max: 11.3, Log10: true},
			FieldSize:               {Min: 0, Max: 1.3, Log10: true},
			FieldStarFormationRate:  {Min: 1, Max: 3, Log10: true},
			FieldMetallicity:        {Min: 0.3, Max: 1.2},
			FieldAge:                {Min: 8.5, Max: 10, Log10: true},
			FieldEnvironmentDensity: {Min: 0.2, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"merger_triggered_burst",
			"bar_driven_gas_inflow",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        1.8,
			DarkMatterFraction: 0.8,
			GasFraction:        0.5,
			EddingtonRatio:     0.01,
		},
		Observables: ObservablesBaseline{
			OpticalSource:  true,
			InfraredSource: true,
			RadioSource:    true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			DustLanes:           true,
			TidalStreams:        true,
			DominantHue:         "magenta",
			ParticleDensityHint: 26000,
		},
		Discoverability: 0.3,
		ScientificValue: 7,
		DangerLevel:     3,
		ResourceValue:   8,
	},
	{
		Key:         "quasar_host",
		Category:    CategoryGalaxy,
		Name:        "Quasar Host Galaxy",
		Description: "Galaxy whose accreting central black hole outshines every star in it; the nucleus dominates the light at all wavelengths.",
		Status:      StatusConfirmed,
		Ranges: map[string]Range{
			FieldMass:               {Min: 10.5, Max: 12.5, Log10: true},
			FieldSize:               {Min: 0.3, Max: 1.8, Log10: true},
			FieldStarFormationRate:  {Min: 0, Max: 2.5, Log10: true},
			FieldMetallicity:        {Min: 0.8, Max: 2},
			FieldAge:                {Min: 9, Max: 10.1, Log10: true},
			FieldEnvironmentDensity: {Min: 0.3, Max: 1},
		},
		FieldOrder: galaxyFieldOrder,
		FormationMechanisms: []string{
			"gas_rich_major_merger",
			"cold_accretion_fed_nucleus",
		},
		Physics: PhysicsBaseline{
			SersicIndex:        3,
			DarkMatterFraction: 0.75,
			GasFraction:        0.2,
			EddingtonRatio:     0.8,
		},
		Observables: ObservablesBaseline{
			XRaySource:     true,
			RadioSource:    true,
			OpticalSource:  true,
			InfraredSource: true,
			VariableSource: true,
		},
		Visual: VisualFeatures{
			ActiveNucleus:       true,
			RelativisticJets:    true,
			DustLanes:           true,
			DominantHue:         "white-violet",
			ParticleDensityHint: 30000,
		},
		Discoverability: 0.25,
		ScientificValue: 9,
		DangerLevel:     6,
		ResourceValue:   6,
	},
}
