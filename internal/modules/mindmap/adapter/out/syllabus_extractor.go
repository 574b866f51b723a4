package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mindmapout "synmap/internal/modules/mindmap/port/out"
	"rsc.io/pdf"
)

// LocalSyllabusExtractor reads syllabus files from disk. PDF files pass
// through a text extraction pass; anything else is treated as plain text.
type LocalSyllabusExtractor struct{}

func NewLocalSyllabusExtractor() mindmapout.SyllabusExtractor {
	return &LocalSyllabusExtractor{}
}

func (e *LocalSyllabusExtractor) Extract(_ context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDF(path)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read syllabus: %w", err)
	}
	return string(payload), nil
}

func extractPDF(path string) (string, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	parts := make([]string, 0, doc.NumPage())
	for number := 1; number <= doc.NumPage(); number++ {
		page := doc.Page(number)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		words := make([]string, 0, len(content.Text))
		for _, text := range content.Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			words = append(words, text.S)
		}
		if len(words) > 0 {
			parts = append(parts, strings.Join(words, " "))
		}
	}
	return strings.Join(parts, "\n"), nil
}
