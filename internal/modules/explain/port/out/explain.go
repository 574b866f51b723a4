package out

import (
	"context"

	"synmap/internal/modules/explain/domain"
)

type ModelProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NoteStore persists explanations as workspace notes.
type NoteStore interface {
	Save(ctx context.Context, explanation domain.Explanation) (string, error)
}
