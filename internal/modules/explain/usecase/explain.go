package usecase

import (
	"context"

	"synmap/internal/modules/explain/dto"
	explainin "synmap/internal/modules/explain/port/in"
	explainout "synmap/internal/modules/explain/port/out"
	"synmap/internal/modules/explain/service"
)

type Interactor struct {
	svc       *service.ExplainService
	noteStore explainout.NoteStore
}

func NewInteractor(svc *service.ExplainService, noteStore explainout.NoteStore) explainin.Usecase {
	return &Interactor{svc: svc, noteStore: noteStore}
}

func (i *Interactor) Explain(ctx context.Context, input dto.ExplainInput) (dto.ExplainOutput, error) {
	explanation, err := i.svc.Explain(ctx, input.Topic)
	if err != nil {
		return dto.ExplainOutput{}, err
	}

	notePath := ""
	if i.noteStore != nil {
		notePath, err = i.noteStore.Save(ctx, explanation)
		if err != nil {
			return dto.ExplainOutput{}, err
		}
	}

	return dto.ExplainOutput{
		Topic:       explanation.Topic,
		Body:        explanation.Body,
		NotePath:    notePath,
		GeneratedAt: explanation.GeneratedAt,
	}, nil
}
