package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
	"github.com/aliskhannn/fawazir-bot/internal/infra/postgres"
)

// ProgressRepository stores completed-level sets as JSONB values keyed by player.
type ProgressRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db postgres.DBTX, transactor *postgres.Transactor) *ProgressRepository {
	return &ProgressRepository{db: db, transactor: transactor}
}

// EnsureSchema creates the progress table if it does not exist.
func (r *ProgressRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS progress_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}

// Get returns the completed levels stored under key.
// Returns entities.ErrProgressNotFound if nothing is stored.
func (r *ProgressRepository) Get(ctx context.Context, key string) (entities.CompletedLevels, error) {
	return getCompleted(ctx, r.db, key, false)
}

// Replace overwrites the value stored under key with the full set. The stored set is
// merged in under a row lock, so a level that was already stored is never dropped.
func (r *ProgressRepository) Replace(ctx context.Context, key string, completed entities.CompletedLevels) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		stored, err := getCompleted(ctx, tx, key, true)
		if err != nil && !errors.Is(err, entities.ErrProgressNotFound) {
			return err
		}

		value, err := json.Marshal(stored.Union(completed))
		if err != nil {
			return fmt.Errorf("replace: encode: %w", err)
		}

		query := `
			INSERT INTO progress_store (key, value, updated_at)
			VALUES ($1, $2::jsonb, now())
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = EXCLUDED.updated_at
		`

		if _, err = tx.Exec(ctx, query, key, string(value)); err != nil {
			return fmt.Errorf("replace: %w", err)
		}

		return nil
	})
}

func getCompleted(ctx context.Context, db postgres.DBTX, key string, forUpdate bool) (entities.CompletedLevels, error) {
	query := `SELECT value FROM progress_store WHERE key = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var raw []byte
	err := db.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.CompletedLevels{}, entities.ErrProgressNotFound
		}
		return entities.CompletedLevels{}, fmt.Errorf("get progress: %w", err)
	}

	var completed entities.CompletedLevels
	if err = json.Unmarshal(raw, &completed); err != nil {
		return entities.CompletedLevels{}, fmt.Errorf("get progress: %w", err)
	}

	return completed, nil
}
