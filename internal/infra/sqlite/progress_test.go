package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

func openTemp(t *testing.T) *ProgressRepository {
	t.Helper()

	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestProgressRepository_GetMissing(t *testing.T) {
	repo := openTemp(t)

	_, err := repo.Get(context.Background(), "fawazir_progress:1")
	if !errors.Is(err, entities.ErrProgressNotFound) {
		t.Errorf("expected ErrProgressNotFound, got %v", err)
	}
}

func TestProgressRepository_ReplaceMerges(t *testing.T) {
	ctx := context.Background()
	repo := openTemp(t)
	key := "fawazir_progress:1"

	if err := repo.Replace(ctx, key, entities.NewCompletedLevels(1, 2)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	// A stale writer missing level 2 must not drop it.
	if err := repo.Replace(ctx, key, entities.NewCompletedLevels(1, 3)); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got.Levels(), want) {
		t.Errorf("expected %v, got %v", want, got.Levels())
	}

	other, err := repo.Get(ctx, "fawazir_progress:2")
	if !errors.Is(err, entities.ErrProgressNotFound) {
		t.Errorf("keys must be independent, got %v %v", other.Levels(), err)
	}
}

func TestProgressRepository_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	repo, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err = repo.Replace(ctx, "k", entities.NewCompletedLevels(5)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	_ = repo.Close()

	repo, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()

	got, err := repo.Get(ctx, "k")
	if err != nil || !got.Contains(5) {
		t.Errorf("expected level 5 after reopen, got %v %v", got.Levels(), err)
	}
}
