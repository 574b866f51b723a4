package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalSyllabusExtractorPlainText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "syllabus.txt")
	if err := os.WriteFile(path, []byte("Week 1: Trees\nWeek 2: Graphs\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	extractor := NewLocalSyllabusExtractor()
	text, err := extractor.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "Week 1: Trees\nWeek 2: Graphs\n" {
		t.Fatalf("text = %q", text)
	}
}

func TestLocalSyllabusExtractorMissingFile(t *testing.T) {
	t.Parallel()

	extractor := NewLocalSyllabusExtractor()
	if _, err := extractor.Extract(context.Background(), filepath.Join(t.TempDir(), "gone.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
