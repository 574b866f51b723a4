package in

import (
	"context"

	"synmap/internal/modules/explain/dto"
	explainin "synmap/internal/modules/explain/port/in"
)

type CLIHandler struct {
	usecase explainin.Usecase
}

func NewCLIHandler(usecase explainin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Explain(ctx context.Context, topic string) (dto.ExplainOutput, error) {
	return h.usecase.Explain(ctx, dto.ExplainInput{Topic: topic})
}
