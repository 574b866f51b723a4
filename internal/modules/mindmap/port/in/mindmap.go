package in

import (
	"context"

	"synmap/internal/modules/mindmap/dto"
)

// Usecase coordinates the mind map session: generation, drill-down,
// explanations, rendering and export all flow through it.
type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error)
	DrillDown(ctx context.Context, input dto.DrillDownInput) (dto.GenerateOutput, error)
	Explain(ctx context.Context, input dto.ExplainInput) (dto.ExplainOutput, error)
	Show(ctx context.Context) (dto.StateOutput, error)
	Reset(ctx context.Context) error
	History(ctx context.Context, limit int) ([]dto.HistoryItemOutput, error)
	Render(ctx context.Context, outPath string) (dto.RenderOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
