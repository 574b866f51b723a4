package in

import (
	"context"

	"synmap/internal/modules/explain/dto"
)

type Usecase interface {
	Explain(ctx context.Context, input dto.ExplainInput) (dto.ExplainOutput, error)
}
