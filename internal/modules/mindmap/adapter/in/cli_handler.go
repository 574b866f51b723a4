package in

import (
	"context"

	"synmap/internal/modules/mindmap/dto"
	mindmapin "synmap/internal/modules/mindmap/port/in"
)

type CLIHandler struct {
	usecase mindmapin.Usecase
}

func NewCLIHandler(usecase mindmapin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, filePath, text string) (dto.GenerateOutput, error) {
	return h.usecase.Generate(ctx, dto.GenerateInput{FilePath: filePath, Text: text})
}

func (h CLIHandler) DrillDown(ctx context.Context, topic string) (dto.GenerateOutput, error) {
	return h.usecase.DrillDown(ctx, dto.DrillDownInput{Topic: topic})
}

func (h CLIHandler) Explain(ctx context.Context, nodeID, topic string) (dto.ExplainOutput, error) {
	return h.usecase.Explain(ctx, dto.ExplainInput{NodeID: nodeID, Topic: topic})
}

func (h CLIHandler) Show(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryItemOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) Render(ctx context.Context, outPath string) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx, outPath)
}

func (h CLIHandler) Export(ctx context.Context, format string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Format: format})
}
