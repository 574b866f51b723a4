package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"synmap/internal/modules/explain/domain"
	explainout "synmap/internal/modules/explain/port/out"
	"synmap/internal/platform/markdown"
	"synmap/internal/platform/slug"
)

// WorkspaceNoteStore writes one markdown note per topic under the workspace
// notes directory. The generated body lives in a managed block; anything the
// user adds around it survives regeneration.
type WorkspaceNoteStore struct {
	notesDir string
}

func NewWorkspaceNoteStore(notesDir string) explainout.NoteStore {
	return &WorkspaceNoteStore{notesDir: notesDir}
}

func (s *WorkspaceNoteStore) Save(_ context.Context, explanation domain.Explanation) (string, error) {
	if err := os.MkdirAll(s.notesDir, 0o755); err != nil {
		return "", fmt.Errorf("create notes directory: %w", err)
	}
	notePath := filepath.Join(s.notesDir, slug.Make(explanation.Topic)+".md")

	body := ""
	if existing, err := os.ReadFile(notePath); err == nil {
		_, existingBody, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr == nil {
			body = existingBody
		}
	}
	body = markdown.ReplaceManagedBlock(body, domain.ManagedBodyStart, domain.ManagedBodyEnd, explanation.Body)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"topic":          explanation.Topic,
		"generated_at":   explanation.GeneratedAt.Format(time.RFC3339),
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write topic note: %w", err)
	}
	return notePath, nil
}
