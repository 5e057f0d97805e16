// Package generation runs the engine behind the API: it validates requests,
// persists reproducible tuples, caches derived results by fingerprint and
// records metrics. The engine itself stays free of I/O.
package generation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"cosmogen-server/internal/astro/body"
	"cosmogen-server/internal/astro/generate"
	"cosmogen-server/internal/metrics"
	"cosmogen-server/internal/shared/config"
	"cosmogen-server/internal/shared/errors"
	"cosmogen-server/internal/shared/redis"
)

type Service struct {
	engine  *generate.Engine
	repo    *Repository
	cache   *redis.Client
	metrics *metrics.Metrics
	logger  *slog.Logger

	maxPopulationSize int
	cacheTTL          time.Duration
}

func NewService(repo *Repository, cache *redis.Client, m *metrics.Metrics, logger *slog.Logger) *Service {
	logger.Debug("Initializing generation service")

	cfg := config.GlobalConfig.Generation
	settings := body.Settings{
		QualityLevel:         cfg.DefaultQuality,
		RadiatedMassFraction: cfg.RadiatedMassFraction,
		ReferenceDistancePc:  cfg.ReferenceDistancePc,
	}

	return &Service{
		engine:            generate.NewEngine(settings),
		repo:              repo,
		cache:             cache,
		metrics:           m,
		logger:            logger,
		maxPopulationSize: cfg.MaxPopulationSize,
		cacheTTL:          cfg.CacheTTL,
	}
}

// Single generates one object, stores its reproducible tuple and caches the
// derived result under the tuple's fingerprint.
func (s *Service) Single(ctx context.Context, classificationKey string, seed int64, overrides map[string]float64) (*GenerationResponse, error) {
	logger := s.logger.With("component", "generation_service", "operation", "single", "classification_key", classificationKey, "seed", seed)
	logger.Debug("Generating single object")

	start := time.Now()
	result, err := s.engine.Single(classificationKey, seed, generate.Overrides(overrides))
	if err != nil {
		s.countFailure("single", err)
		return nil, mapEngineError(err)
	}
	s.observe("single", result.Config.ClassificationKey, time.Since(start))

	record, err := s.repo.Create(ctx, result.Config.ClassificationKey, seed, result.Config.Overrides, result.Config.Fingerprint(), nil)
	if err != nil {
		return nil, errors.WrapInternal("failed to store generation", err)
	}

	s.cacheResult(ctx, record.Fingerprint, result)

	logger.Info("Object generated",
		"generation_id", record.ID,
		"resolved_classification", result.Config.ClassificationKey,
		"fingerprint", record.Fingerprint)

	return &GenerationResponse{Record: record, Result: result}, nil
}

// Binary generates a bound pair with relational quantities.
func (s *Service) Binary(ctx context.Context, primaryKey, secondaryKey string, seed int64) (*generate.BinaryResult, error) {
	logger := s.logger.With("component", "generation_service", "operation", "binary", "primary", primaryKey, "secondary", secondaryKey, "seed", seed)
	logger.Debug("Generating binary system")

	start := time.Now()
	result, err := s.engine.Binary(primaryKey, secondaryKey, seed)
	if err != nil {
		s.countFailure("binary", err)
		return nil, mapEngineError(err)
	}
	s.observe("binary", result.Primary.Config.ClassificationKey, time.Since(start))

	logger.Info("Binary system generated", "separation_m", result.SeparationM)
	return result, nil
}

// Merger generates a pre-merger binary plus its remnant.
func (s *Service) Merger(ctx context.Context, primaryKey, secondaryKey string, seed int64) ([]*generate.Result, error) {
	logger := s.logger.With("component", "generation_service", "operation", "merger", "primary", primaryKey, "secondary", secondaryKey, "seed", seed)
	logger.Debug("Generating merger sequence")

	start := time.Now()
	sequence, err := s.engine.MergerSequence(primaryKey, secondaryKey, seed)
	if err != nil {
		s.countFailure("merger", err)
		return nil, mapEngineError(err)
	}
	s.observe("merger", sequence[len(sequence)-1].Config.ClassificationKey, time.Since(start))

	logger.Info("Merger sequence generated",
		"remnant_classification", sequence[len(sequence)-1].Config.ClassificationKey,
		"remnant_mass_solar", sequence[len(sequence)-1].Config.MassSolar())
	return sequence, nil
}

// Population generates count members around a common center of mass. The
// count is capped by configuration; generation cancels cooperatively with
// the request context.
func (s *Service) Population(ctx context.Context, classificationKey string, count int, seed int64) ([]*generate.Result, error) {
	logger := s.logger.With("component", "generation_service", "operation", "population", "classification_key", classificationKey, "count", count, "seed", seed)
	logger.Debug("Generating population")

	if count <= 0 {
		return nil, errors.Validation("count must be positive")
	}
	if count > s.maxPopulationSize {
		return nil, errors.Validationf("count %d exceeds the maximum population size %d", count, s.maxPopulationSize)
	}

	start := time.Now()
	members, err := s.engine.Population(ctx, classificationKey, count, seed)
	if err != nil {
		s.countFailure("population", err)
		return nil, mapEngineError(err)
	}
	s.observe("population", classificationKey, time.Since(start))

	logger.Info("Population generated", "count", len(members))
	return members, nil
}

// List returns stored generation tuples, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]GenerationRecord, error) {
	records, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.WrapInternal("failed to list generations", err)
	}
	return records, nil
}

// GetResult loads a stored tuple and returns the full derived result,
// served from the cache when possible and regenerated deterministically
// otherwise.
func (s *Service) GetResult(ctx context.Context, id int) (*GenerationResponse, error) {
	logger := s.logger.With("component", "generation_service", "operation", "get_result", "generation_id", id)
	logger.Debug("Loading generation result")

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WrapInternal("failed to load generation", err)
	}
	if record == nil {
		return nil, errors.NotFoundf("generation not found with id: %d", id)
	}

	if cached := s.cachedResult(ctx, record.Fingerprint); cached != nil {
		logger.Debug("Result served from cache", "fingerprint", record.Fingerprint)
		return &GenerationResponse{Record: record, Result: cached}, nil
	}

	result, err := s.engine.Single(record.ClassificationKey, record.Seed, generate.Overrides(record.Overrides))
	if err != nil {
		// The tuple was valid when stored; failing to replay it means the
		// registry changed underneath us.
		return nil, errors.WrapInternal("failed to regenerate stored tuple", err)
	}
	s.cacheResult(ctx, record.Fingerprint, result)

	return &GenerationResponse{Record: record, Result: result}, nil
}

// Delete removes a stored tuple and evicts its cached result.
func (s *Service) Delete(ctx context.Context, id int) error {
	logger := s.logger.With("component", "generation_service", "operation", "delete", "generation_id", id)
	logger.Debug("Deleting generation")

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.WrapInternal("failed to load generation", err)
	}
	if record == nil {
		return errors.NotFoundf("generation not found with id: %d", id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.WrapInternal("failed to delete generation", err)
	}
	if !deleted {
		return errors.NotFoundf("generation not found with id: %d", id)
	}

	s.evictResult(ctx, record.Fingerprint)

	logger.Info("Generation deleted", "fingerprint", record.Fingerprint)
	return nil
}

func (s *Service) cacheKey(fingerprint string) string {
	return "generation:result:" + fingerprint
}

func (s *Service) cacheResult(ctx context.Context, fingerprint string, result *generate.Result) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("Failed to marshal result for caching", "error", err, "fingerprint", fingerprint)
		return
	}

	if err := s.cache.Set(ctx, s.cacheKey(fingerprint), raw, s.cacheTTL).Err(); err != nil {
		// Cache failures degrade to recomputation, never to a request error.
		s.logger.Warn("Failed to cache generation result", "error", err, "fingerprint", fingerprint)
	}
}

func (s *Service) cachedResult(ctx context.Context, fingerprint string) *generate.Result {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, s.cacheKey(fingerprint)).Bytes()
	if err != nil {
		s.metrics.CacheMisses.Inc()
		return nil
	}

	var result generate.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.Warn("Failed to unmarshal cached result", "error", err, "fingerprint", fingerprint)
		s.metrics.CacheMisses.Inc()
		return nil
	}

	s.metrics.CacheHits.Inc()
	return &result
}

func (s *Service) evictResult(ctx context.Context, fingerprint string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cacheKey(fingerprint)).Err(); err != nil {
		s.logger.Warn("Failed to evict cached result", "error", err, "fingerprint", fingerprint)
	}
}

func (s *Service) observe(operation, classification string, elapsed time.Duration) {
	if classification == "" {
		classification = "mixed"
	}
	s.metrics.GenerationsTotal.WithLabelValues(operation, classification).Inc()
	s.metrics.GenerationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (s *Service) countFailure(operation string, err error) {
	s.metrics.GenerationFailures.WithLabelValues(operation, string(errors.GetType(mapEngineError(err)))).Inc()
}

// mapEngineError translates engine sentinels into the application error
// taxonomy the response layer maps to status codes.
func mapEngineError(err error) error {
	switch {
	// Composite failures wrap their cause, so this check has to come before
	// the cause-specific ones.
	case stderrors.Is(err, generate.ErrCompositionFailed):
		return errors.WrapCompositionFailed("composite generation failed", err)
	case stderrors.Is(err, generate.ErrUnknownClassification):
		return errors.WrapUnknownClassification("classification not found", err)
	case stderrors.Is(err, generate.ErrInvalidOverride):
		return errors.WrapInvalidOverride("override rejected", err)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.WrapValidation("generation cancelled", err)
	default:
		return errors.WrapInternal(fmt.Sprintf("generation failed: %v", err), err)
	}
}
