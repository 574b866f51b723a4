package usecase

import (
	"context"

	"synmap/internal/modules/export/dto"
	exportin "synmap/internal/modules/export/port/in"
	"synmap/internal/modules/export/service"
)

type Interactor struct {
	svc *service.ExportService
}

func NewInteractor(svc *service.ExportService) exportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	return i.svc.Export(ctx, input)
}

func (i *Interactor) List(ctx context.Context) ([]dto.ExporterOutput, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorEntryOutput, error) {
	return i.svc.Doctor(ctx)
}
