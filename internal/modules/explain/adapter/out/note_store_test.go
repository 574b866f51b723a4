package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	explainout "synmap/internal/modules/explain/adapter/out"
	"synmap/internal/modules/explain/domain"
)

func TestWorkspaceNoteStoreWritesFrontmatterNote(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := explainout.NewWorkspaceNoteStore(dir)

	path, err := store.Save(context.Background(), domain.Explanation{
		Topic:       "Binary Trees",
		Body:        "**Summary**: hierarchical structure.",
		GeneratedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "binary-trees.md" {
		t.Fatalf("unexpected note path %q", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "---\n") || !strings.Contains(text, "topic: Binary Trees") {
		t.Fatalf("frontmatter missing:\n%s", text)
	}
	if !strings.Contains(text, domain.ManagedBodyStart) || !strings.Contains(text, "hierarchical structure") {
		t.Fatalf("managed body missing:\n%s", text)
	}
}

func TestWorkspaceNoteStorePreservesUserContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := explainout.NewWorkspaceNoteStore(dir)

	first := domain.Explanation{Topic: "Loops", Body: "old body", GeneratedAt: time.Now()}
	path, err := store.Save(context.Background(), first)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Simulate the user appending their own notes after the managed block.
	content, _ := os.ReadFile(path)
	if err := os.WriteFile(path, append(content, []byte("\nMy own mnemonic.\n")...), 0o644); err != nil {
		t.Fatalf("append user content: %v", err)
	}

	second := domain.Explanation{Topic: "Loops", Body: "new body", GeneratedAt: time.Now()}
	if _, err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	updated, _ := os.ReadFile(path)
	text := string(updated)
	if !strings.Contains(text, "new body") || strings.Contains(text, "old body") {
		t.Fatalf("managed block not replaced:\n%s", text)
	}
	if !strings.Contains(text, "My own mnemonic.") {
		t.Fatalf("user content lost:\n%s", text)
	}
}
