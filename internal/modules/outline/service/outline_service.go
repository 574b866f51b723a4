package service

import (
	"context"
	"fmt"
	"strings"

	"synmap/internal/modules/outline/domain"
	outlineout "synmap/internal/modules/outline/port/out"
	apperrors "synmap/internal/platform/errors"
)

type OutlineService struct {
	provider outlineout.ModelProvider
}

func NewOutlineService(provider outlineout.ModelProvider) *OutlineService {
	return &OutlineService{provider: provider}
}

// Generate runs the structure pipeline for one input: normalize, prompt the
// model, decode the response, flatten to a graph. Every failure path returns
// before any result is produced, so callers can keep prior state intact.
func (s *OutlineService) Generate(ctx context.Context, text string) (domain.Topic, domain.Graph, error) {
	cleaned := domain.Normalize(text)
	if cleaned == "" {
		return domain.Topic{}, domain.Graph{}, fmt.Errorf("%w: no usable text after cleaning", apperrors.ErrInvalidInput)
	}

	raw, err := s.provider.Complete(ctx, structurePrompt(cleaned))
	if err != nil {
		return domain.Topic{}, domain.Graph{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Topic{}, domain.Graph{}, fmt.Errorf("%w: empty response", apperrors.ErrProvider)
	}

	root, err := domain.DecodeOutline(raw)
	if err != nil {
		return domain.Topic{}, domain.Graph{}, err
	}

	graph, err := domain.BuildGraph(root)
	if err != nil {
		return domain.Topic{}, domain.Graph{}, err
	}
	return root, graph, nil
}
