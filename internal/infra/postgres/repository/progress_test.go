package repository

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
	"github.com/aliskhannn/fawazir-bot/internal/infra/postgres"
)

// Runs against a live database only when TEST_DATABASE_URL is set.
func TestProgressRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	repo := NewProgressRepository(pool, postgres.NewTransactor(pool))
	if err = repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	key := "test:" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM progress_store WHERE key = $1", key)
	})

	if _, err = repo.Get(ctx, key); !errors.Is(err, entities.ErrProgressNotFound) {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}

	if err = repo.Replace(ctx, key, entities.NewCompletedLevels(1, 2)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err = repo.Replace(ctx, key, entities.NewCompletedLevels(3)); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got.Levels(), want) {
		t.Errorf("expected %v, got %v", want, got.Levels())
	}
}
