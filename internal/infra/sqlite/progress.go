package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

// ProgressRepository stores completed-level sets in a local SQLite file.
type ProgressRepository struct {
	conn *sql.DB
}

// Open opens the database at path and creates the progress table if needed.
func Open(ctx context.Context, path string) (*ProgressRepository, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows a single writer.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	_, err = conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS progress_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &ProgressRepository{conn: conn}, nil
}

// Close closes the database connection.
func (r *ProgressRepository) Close() error {
	return r.conn.Close()
}

// Get returns the completed levels stored under key.
func (r *ProgressRepository) Get(ctx context.Context, key string) (entities.CompletedLevels, error) {
	return getCompleted(ctx, r.conn, key)
}

// Replace overwrites the value under key with the union of the stored and given sets.
func (r *ProgressRepository) Replace(ctx context.Context, key string, completed entities.CompletedLevels) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := getCompleted(ctx, tx, key)
	if err != nil && !errors.Is(err, entities.ErrProgressNotFound) {
		return err
	}

	value, err := json.Marshal(stored.Union(completed))
	if err != nil {
		return fmt.Errorf("replace: encode: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO progress_store (key, value, updated_at) VALUES (?, ?, ?)",
		key, string(value), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("replace: %w", err)
	}

	return tx.Commit()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getCompleted(ctx context.Context, db queryRower, key string) (entities.CompletedLevels, error) {
	var raw string
	err := db.QueryRowContext(ctx, "SELECT value FROM progress_store WHERE key = ?", key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.CompletedLevels{}, entities.ErrProgressNotFound
		}
		return entities.CompletedLevels{}, fmt.Errorf("get progress: %w", err)
	}

	var completed entities.CompletedLevels
	if err = json.Unmarshal([]byte(raw), &completed); err != nil {
		return entities.CompletedLevels{}, fmt.Errorf("get progress: %w", err)
	}

	return completed, nil
}
