package out

import (
	"context"

	"synmap/internal/modules/mindmap/domain"
)

// StateStore persists the current session state. Load returns
// apperrors.ErrNoMindmap when nothing has been generated yet.
type StateStore interface {
	Save(ctx context.Context, state domain.State) error
	Load(ctx context.Context) (domain.State, error)
	Clear(ctx context.Context) error
}

// SyllabusExtractor turns an uploaded syllabus file into plain text.
type SyllabusExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

type HistoryProjector interface {
	Record(ctx context.Context, gen domain.Generation) error
	List(ctx context.Context, limit int) ([]domain.Generation, error)
}

// MapRenderer writes a standalone visualisation of the state to outPath.
type MapRenderer interface {
	Render(ctx context.Context, state domain.State, outPath string) error
}
