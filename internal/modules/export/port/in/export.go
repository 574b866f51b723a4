package in

import (
	"context"

	"synmap/internal/modules/export/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	List(ctx context.Context) ([]dto.ExporterOutput, error)
	Doctor(ctx context.Context) ([]dto.DoctorEntryOutput, error)
}
