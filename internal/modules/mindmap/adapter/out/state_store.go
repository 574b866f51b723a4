package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"synmap/internal/modules/mindmap/domain"
	mindmapout "synmap/internal/modules/mindmap/port/out"
	apperrors "synmap/internal/platform/errors"
)

type FileStateStore struct {
	path string
}

func NewFileStateStore(statePath string) mindmapout.StateStore {
	return &FileStateStore{path: statePath}
}

func (s *FileStateStore) Save(_ context.Context, state domain.State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *FileStateStore) Load(_ context.Context) (domain.State, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.State{}, apperrors.ErrNoMindmap
		}
		return domain.State{}, fmt.Errorf("read state: %w", err)
	}
	state := domain.State{}
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.State{}, fmt.Errorf("decode state: %w", err)
	}
	if !state.HasMap() {
		return domain.State{}, apperrors.ErrNoMindmap
	}
	return state, nil
}

func (s *FileStateStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
