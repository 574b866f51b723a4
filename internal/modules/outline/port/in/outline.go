package in

import (
	"context"

	"synmap/internal/modules/outline/dto"
)

type Usecase interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.OutlineOutput, error)
}
