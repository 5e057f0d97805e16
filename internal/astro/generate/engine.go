// Package generate is the engine facade: it owns the RNG stream of each
// generation call, resolves classifications, builds instance configs and
// runs the derivation pipeline. Every call seeds its own stream, so calls
// are independent and safe to run concurrently; the registry underneath is
// immutable after init.
package generate

import (
	"time"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/physics"
	"cosmogen-server/internal/astro/registry"
	"cosmogen-server/internal/astro/report"
	"cosmogen-server/internal/astro/rng"
)

// Result is the full output for one object. Config, Physics and Observables
// are byte-identical across calls with identical inputs; Report carries
// wall-clock metadata and is not.
type Result struct {
	Config      *body.Config         `json:"config"`
	Physics     *physics.Profile     `json:"physics"`
	Observables *physics.Observables `json:"observables"`
	Report      *report.Report       `json:"report"`

	// PositionPc is the member position relative to the population's center
	// of mass. Zero for anything generated outside a population.
	PositionPc [3]float64 `json:"position_pc"`
}

// Engine runs generation calls against one explicit settings struct. It is
// stateless apart from those settings and safe for concurrent use.
type Engine struct {
	settings body.Settings
}

func NewEngine(settings body.Settings) *Engine {
	return &Engine{settings: settings}
}

// Settings returns the settings this engine was built with.
func (e *Engine) Settings() body.Settings { return e.settings }

// Single generates one object. An empty key selects a classification by
// discoverability weight; overrides replace sampling for the named fields.
func (e *Engine) Single(key string, seed int64, overrides Overrides) (*Result, error) {
	start := time.Now()
	src := rng.New(seed)

	def, err := Resolve(key, src)
	if err != nil {
		return nil, err
	}
	cfg, err := buildConfig(def, seed, overrides, src)
	if err != nil {
		return nil, err
	}
	return e.assemble(cfg, physics.Derive(cfg, def), def, start), nil
}

// assemble runs the observables and report stages over an already-derived
// physics profile.
func (e *Engine) assemble(cfg *body.Config, phys *physics.Profile, def *registry.TypeDefinition, start time.Time) *Result {
	obs := physics.DeriveObservables(cfg, phys, def, e.settings.ReferenceDistancePc)
	rep := report.Build(cfg, phys, obs, def, e.settings, time.Since(start))
	return &Result{Config: cfg, Physics: phys, Observables: obs, Report: rep}
}
