package in

import (
	"context"

	"synmap/internal/modules/export/dto"
	exportin "synmap/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ExporterOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorEntryOutput, error) {
	return h.usecase.Doctor(ctx)
}
