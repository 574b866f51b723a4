package out

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"synmap/internal/modules/mindmap/domain"
)

func TestEChartsRendererWritesHTML(t *testing.T) {
	t.Parallel()

	state := domain.NewState(
		"Algorithms",
		[]domain.Node{
			{ID: "n1", Label: "Algorithms", Tier: 0, Size: 25, Color: "#f9a825"},
			{ID: "n2", Label: "Sorting", Tier: 1, Size: 20, Color: "#42a5f5"},
		},
		[]domain.Edge{{SourceID: "n1", TargetID: "n2"}},
		map[string]string{"n1": "Algorithms", "n2": "Sorting"},
		2,
		time.Now(),
	)

	outPath := filepath.Join(t.TempDir(), "exports", "map.html")
	if err := NewEChartsRenderer().Render(context.Background(), state, outPath); err != nil {
		t.Fatalf("Render: %v", err)
	}

	payload, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read rendered file: %v", err)
	}
	html := string(payload)
	for _, want := range []string{"Algorithms", "Sorting", "#42a5f5"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html misses %q", want)
		}
	}
}

func TestEChartsRendererRejectsDanglingEdge(t *testing.T) {
	t.Parallel()

	state := domain.NewState(
		"Algorithms",
		[]domain.Node{{ID: "n1", Label: "Algorithms", Tier: 0, Size: 25, Color: "#f9a825"}},
		[]domain.Edge{{SourceID: "n1", TargetID: "ghost"}},
		map[string]string{"n1": "Algorithms"},
		1,
		time.Now(),
	)
	err := NewEChartsRenderer().Render(context.Background(), state, filepath.Join(t.TempDir(), "map.html"))
	if err == nil {
		t.Fatal("expected error for dangling edge")
	}
}
