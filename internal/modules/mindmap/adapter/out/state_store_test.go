package out

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"synmap/internal/modules/mindmap/domain"
	apperrors "synmap/internal/platform/errors"
)

func sampleState() domain.State {
	return domain.NewState(
		"Operating Systems",
		[]domain.Node{{ID: "n1", Label: "Operating Systems", Tier: 0, Size: 25, Color: "#f9a825"}},
		nil,
		map[string]string{"n1": "Operating Systems"},
		1,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	)
}

func TestFileStateStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), ".synmap", "mindmap.json"))
	state := sampleState().WithSelection("Operating Systems", "### Summary\nbody")

	if err := store.Save(context.Background(), state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.RootTopic != state.RootTopic || loaded.SelectedTopic != state.SelectedTopic {
		t.Fatalf("loaded = %+v", loaded)
	}
	if !loaded.GeneratedAt.Equal(state.GeneratedAt) {
		t.Fatalf("generated_at = %v, want %v", loaded.GeneratedAt, state.GeneratedAt)
	}
}

func TestFileStateStoreMissingFile(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), "mindmap.json"))
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoMindmap) {
		t.Fatalf("err = %v, want ErrNoMindmap", err)
	}
}

func TestFileStateStoreClear(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), "mindmap.json"))
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if err := store.Save(context.Background(), sampleState()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNoMindmap) {
		t.Fatalf("err = %v, want ErrNoMindmap after clear", err)
	}
}
