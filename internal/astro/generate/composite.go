package generate

import (
	"context"
	"fmt"
	"math"
	"time"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/astro/rng"
)

// Separation sampling bounds: the lower bound clears twice the combined
// body radius (no contact systems), the upper bound sits six decades above
// it.
const separationDecades = 6.0

// Maximum sampled orbital eccentricity.
const maxEccentricity = 0.9

// BinaryResult is a generated pair plus the relational quantities computed
// from the sampled orbit.
type BinaryResult struct {
	Primary   *Result `json:"primary"`
	Secondary *Result `json:"secondary"`

	SeparationM          float64 `json:"separation_m"`
	Eccentricity         float64 `json:"eccentricity"`
	OrbitalPeriodS       float64 `json:"orbital_period_s"`
	InteractionStrengthN float64 `json:"interaction_strength_n"`
	CoalescenceTimeYr    float64 `json:"coalescence_time_yr"`
}

// Binary generates a bound pair. Both members share one RNG stream, in
// order: primary selection and fields, secondary selection and fields,
// orbital separation, eccentricity. Keys may be empty to select by
// discoverability weight. Any failure fails the whole call.
func (e *Engine) Binary(primaryKey, secondaryKey string, seed int64) (*BinaryResult, error) {
	src := rng.New(seed)
	return e.binaryFrom(primaryKey, secondaryKey, seed, src, time.Now())
}

func (e *Engine) binaryFrom(primaryKey, secondaryKey string, seed int64, src *rng.Source, start time.Time) (*BinaryResult, error) {
	pDef, pCfg, err := e.progenitor(primaryKey, seed, src)
	if err != nil {
		return nil, err
	}
	sDef, sCfg, err := e.progenitor(secondaryKey, seed, src)
	if err != nil {
		return nil, err
	}

	// Physics profiles don't depend on binary state, so derive them first
	// and size the orbit from the resulting radii.
	pPhys := physics.Derive(pCfg, pDef)
	sPhys := physics.Derive(sCfg, sDef)

	minSeparation := 2 * (bodyRadius(pPhys, pDef.Category) + bodyRadius(sPhys, sDef.Category))
	if minSeparation <= 0 {
		return nil, fmt.Errorf("%w: degenerate progenitor radii", ErrCompositionFailed)
	}
	logMin := math.Log10(minSeparation)
	separation := rng.SampleLog10(src, logMin, logMin+separationDecades)
	eccentricity := rng.SampleLinear(src, 0, maxEccentricity)

	pCfg.Binary = body.BinaryState{
		IsBinary:           true,
		CompanionMassSolar: sCfg.MassSolar(),
		SeparationM:        separation,
		Eccentricity:       eccentricity,
	}
	sCfg.Binary = body.BinaryState{
		IsBinary:           true,
		CompanionMassSolar: pCfg.MassSolar(),
		SeparationM:        separation,
		Eccentricity:       eccentricity,
	}

	m1 := pPhys.MassKg
	m2 := sPhys.MassKg

	return &BinaryResult{
		Primary:              e.assemble(pCfg, pPhys, pDef, start),
		Secondary:            e.assemble(sCfg, sPhys, sDef, start),
		SeparationM:          separation,
		Eccentricity:         eccentricity,
		OrbitalPeriodS:       physics.OrbitalPeriod(m1, m2, separation),
		InteractionStrengthN: physics.InteractionStrength(m1, m2, separation),
		CoalescenceTimeYr:    physics.CoalescenceTime(m1, m2, separation),
	}, nil
}

// MergerSequence generates a pre-merger binary and its remnant, sharing one
// RNG stream across all three objects. The remnant keeps the primary's mass
// plus the secondary's minus the radiated fraction, supplied to the builder
// as an explicit mass override; its classification comes from a rule table
// on the remnant mass. Returns pre-merger pair then remnant.
func (e *Engine) MergerSequence(primaryKey, secondaryKey string, seed int64) ([]*Result, error) {
	start := time.Now()
	src := rng.New(seed)

	bin, err := e.binaryFrom(primaryKey, secondaryKey, seed, src, start)
	if err != nil {
		return nil, err
	}

	m1 := bin.Primary.Config.MassSolar()
	m2 := bin.Secondary.Config.MassSolar()
	remnantMass := m1 + m2*(1-e.settings.RadiatedMassFraction)

	remnantKey := remnantClassification(bin.Primary.Config.Category, bin.Secondary.Config.Category, remnantMass)
	remnantDef, ok := registry.Lookup(remnantKey)
	if !ok {
		return nil, fmt.Errorf("%w: remnant classification %q missing", ErrCompositionFailed, remnantKey)
	}

	remnantCfg, err := buildConfig(remnantDef, seed, Overrides{registry.FieldMass: remnantMass}, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompositionFailed, err)
	}
	remnant := e.assemble(remnantCfg, physics.Derive(remnantCfg, remnantDef), remnantDef, start)

	return []*Result{bin.Primary, bin.Secondary, remnant}, nil
}

// Population generates count independent members positioned relative to
// their common center of mass. An empty key reselects a classification per
// member, so keyless populations mix types. Cancellation is checked between
// members; a cancelled call discards everything, including the member in
// progress.
func (e *Engine) Population(ctx context.Context, key string, count int, seed int64) ([]*Result, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: population count must be positive, got %d", ErrCompositionFailed, count)
	}

	start := time.Now()
	src := rng.New(seed)
	radiusPc := 10 * math.Cbrt(float64(count))

	results := make([]*Result, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		def, cfg, err := e.progenitor(key, seed, src)
		if err != nil {
			return nil, err
		}
		member := e.assemble(cfg, physics.Derive(cfg, def), def, start)
		for axis := 0; axis < 3; axis++ {
			member.PositionPc[axis] = rng.SampleLinear(src, -radiusPc, radiusPc)
		}
		results = append(results, member)
	}

	recenter(results)
	return results, nil
}

// progenitor resolves and builds one composite member, folding any failure
// into ErrCompositionFailed with the cause preserved.
func (e *Engine) progenitor(key string, seed int64, src *rng.Source) (*registry.TypeDefinition, *body.Config, error) {
	def, err := Resolve(key, src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCompositionFailed, err)
	}
	cfg, err := buildConfig(def, seed, nil, src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCompositionFailed, err)
	}
	return def, cfg, nil
}

// recenter shifts member positions so the mass-weighted centroid sits at
// the origin.
func recenter(members []*Result) {
	var total float64
	var centroid [3]float64
	for _, m := range members {
		mass := m.Config.MassSolar()
		total += mass
		for axis := 0; axis < 3; axis++ {
			centroid[axis] += mass * m.PositionPc[axis]
		}
	}
	if total <= 0 {
		return
	}
	for axis := 0; axis < 3; axis++ {
		centroid[axis] /= total
	}
	for _, m := range members {
		for axis := 0; axis < 3; axis++ {
			m.PositionPc[axis] -= centroid[axis]
		}
	}
}

// bodyRadius picks the physical extent relevant to orbit sizing for one
// category.
func bodyRadius(phys *physics.Profile, category registry.Category) float64 {
	switch category {
	case registry.CategoryBlackHole:
		return phys.SchwarzschildRadiusM
	case registry.CategoryGalaxy:
		return phys.HalfLightRadiusM
	default:
		return phys.RadiusM
	}
}

// remnantClassification is the merger rule table. Galaxy mergers relax into
// ellipticals; compact mergers land in a mass bucket.
func remnantClassification(primary, secondary registry.Category, remnantMassSolar float64) string {
	if primary == registry.CategoryGalaxy || secondary == registry.CategoryGalaxy {
		return "elliptical"
	}
	switch {
	case remnantMassSolar < 100:
		return "binary_merger_remnant"
	case remnantMassSolar < 1e5:
		return "intermediate_mass"
	case remnantMassSolar < math.Pow(10, 9.8):
		return "supermassive"
	default:
		return "ultramassive"
	}
}
