package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"synmap/internal/modules/mindmap/domain"
)

func TestSQLiteHistoryRecordAndList(t *testing.T) {
	t.Parallel()

	projector, err := NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), ".synmap", "synmap.db"))
	if err != nil {
		t.Fatalf("NewSQLiteHistoryProjector: %v", err)
	}

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, topic := range []string{"Databases", "Networking", "Compilers"} {
		gen := domain.Generation{
			ID:        string(rune('a' + i)),
			RootTopic: topic,
			Source:    domain.SourceText,
			NodeCount: 4 + i,
			EdgeCount: 3 + i,
			Depth:     2,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := projector.Record(context.Background(), gen); err != nil {
			t.Fatalf("Record %q: %v", topic, err)
		}
	}

	gens, err := projector.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gens) != 2 {
		t.Fatalf("len = %d, want 2", len(gens))
	}
	if gens[0].RootTopic != "Compilers" || gens[1].RootTopic != "Networking" {
		t.Fatalf("order = %q, %q", gens[0].RootTopic, gens[1].RootTopic)
	}
	if gens[0].NodeCount != 6 || gens[0].EdgeCount != 5 {
		t.Fatalf("counts = %d/%d", gens[0].NodeCount, gens[0].EdgeCount)
	}
	if !gens[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("created_at = %v", gens[0].CreatedAt)
	}
}

func TestSQLiteHistoryOrdersAcrossOffsets(t *testing.T) {
	t.Parallel()

	projector, err := NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "synmap.db"))
	if err != nil {
		t.Fatalf("NewSQLiteHistoryProjector: %v", err)
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	older := time.Date(2026, 3, 1, 23, 0, 0, 0, tokyo) // 14:00 UTC
	newer := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	for _, gen := range []domain.Generation{
		{ID: "a", RootTopic: "Graphs", Source: domain.SourceText, CreatedAt: older},
		{ID: "b", RootTopic: "Heaps", Source: domain.SourceText, CreatedAt: newer},
	} {
		if err := projector.Record(context.Background(), gen); err != nil {
			t.Fatalf("Record %q: %v", gen.RootTopic, err)
		}
	}

	gens, err := projector.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(gens) != 2 {
		t.Fatalf("len = %d, want 2", len(gens))
	}
	if gens[0].RootTopic != "Heaps" || gens[1].RootTopic != "Graphs" {
		t.Fatalf("order = %q, %q", gens[0].RootTopic, gens[1].RootTopic)
	}
	if !gens[1].CreatedAt.Equal(older) {
		t.Fatalf("created_at = %v, want instant %v", gens[1].CreatedAt, older)
	}
}
