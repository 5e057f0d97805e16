package generation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"cosmogen-server/internal/shared/database"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing generation repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *Repository) Create(ctx context.Context, classificationKey string, seed int64, overrides map[string]float64, fingerprint string, tx *database.Tx) (*GenerationRecord, error) {
	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "generation_repository",
		"operation", "create_generation",
		"classification_key", classificationKey,
		"seed", seed,
	)
	logger.Debug("Storing generation tuple")

	var overridesJSON any
	if len(overrides) > 0 {
		raw, err := json.Marshal(overrides)
		if err != nil {
			logger.Error("Failed to marshal overrides", "error", err)
			return nil, fmt.Errorf("failed to marshal overrides: %w", err)
		}
		overridesJSON = string(raw)
	}

	query := `
		INSERT INTO generations (classification_key, seed, overrides, fingerprint)
		VALUES ($1, $2, $3, $4)
		RETURNING id, classification_key, seed, overrides, fingerprint, created_at
	`

	record, err := scanRecord(exec.QueryRowContext(ctx, query, classificationKey, seed, overridesJSON, fingerprint))
	if err != nil {
		logger.Error("Failed to store generation", "error", err)
		return nil, fmt.Errorf("failed to store generation: %w", err)
	}

	logger.Debug("Generation stored", "generation_id", record.ID)
	return record, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*GenerationRecord, error) {
	logger := r.logger.With("component", "generation_repository", "operation", "get_generation", "generation_id", id)
	logger.Debug("Loading generation tuple")

	query := `
		SELECT id, classification_key, seed, overrides, fingerprint, created_at
		FROM generations
		WHERE id = $1
	`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to load generation", "error", err)
		return nil, fmt.Errorf("failed to load generation: %w", err)
	}

	return record, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]GenerationRecord, error) {
	logger := r.logger.With("component", "generation_repository", "operation", "list_generations", "limit", limit, "offset", offset)
	logger.Debug("Listing generation tuples")

	query := `
		SELECT id, classification_key, seed, overrides, fingerprint, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		logger.Error("Failed to query generations", "error", err)
		return nil, fmt.Errorf("failed to query generations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var records []GenerationRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			logger.Error("Failed to scan generation row", "error", err)
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating generations: %w", err)
	}

	logger.Debug("Generations listed", "count", len(records))
	return records, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	logger := r.logger.With("component", "generation_repository", "operation", "delete_generation", "generation_id", id)
	logger.Debug("Deleting generation tuple")

	result, err := r.db.ExecContext(ctx, `DELETE FROM generations WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete generation", "error", err)
		return false, fmt.Errorf("failed to delete generation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("Failed to read affected rows", "error", err)
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	logger.Debug("Generation delete finished", "deleted", affected > 0)
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*GenerationRecord, error) {
	var record GenerationRecord
	var overridesRaw []byte

	err := row.Scan(
		&record.ID,
		&record.ClassificationKey,
		&record.Seed,
		&overridesRaw,
		&record.Fingerprint,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(overridesRaw) > 0 {
		if err := json.Unmarshal(overridesRaw, &record.Overrides); err != nil {
			return nil, fmt.Errorf("failed to unmarshal overrides: %w", err)
		}
	}

	return &record, nil
}
