package in

import (
	"context"

	"synmap/internal/modules/outline/dto"
	outlinein "synmap/internal/modules/outline/port/in"
)

type CLIHandler struct {
	usecase outlinein.Usecase
}

func NewCLIHandler(usecase outlinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Generate(ctx context.Context, text string) (dto.OutlineOutput, error) {
	return h.usecase.Generate(ctx, dto.GenerateInput{Text: text})
}
