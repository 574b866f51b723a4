package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"synmap/internal/modules/mindmap/domain"
	mindmapout "synmap/internal/modules/mindmap/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (mindmapout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS generations (
  id TEXT PRIMARY KEY,
  root_topic TEXT NOT NULL,
  source TEXT NOT NULL,
  node_count INTEGER NOT NULL,
  edge_count INTEGER NOT NULL,
  depth INTEGER NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create generations table: %w", err)
	}
	return nil
}

// Record inserts one history row. created_at is stored in UTC so the
// lexical ORDER BY in List stays chronological across machine offsets.
func (s *SQLiteHistoryProjector) Record(ctx context.Context, gen domain.Generation) error {
	const stmt = `
INSERT INTO generations (id, root_topic, source, node_count, edge_count, depth, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		gen.ID,
		gen.RootTopic,
		gen.Source,
		gen.NodeCount,
		gen.EdgeCount,
		gen.Depth,
		gen.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) List(ctx context.Context, limit int) ([]domain.Generation, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, root_topic, source, node_count, edge_count, depth, created_at
FROM generations
ORDER BY created_at DESC, id DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer rows.Close()

	gens := make([]domain.Generation, 0, limit)
	for rows.Next() {
		var gen domain.Generation
		var createdAt string
		if err := rows.Scan(&gen.ID, &gen.RootTopic, &gen.Source, &gen.NodeCount, &gen.EdgeCount, &gen.Depth, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		gen.CreatedAt = parsed
		gens = append(gens, gen)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}
	return gens, nil
}
