package service

import (
	"context"
	"fmt"
	"strings"

	"synmap/internal/modules/explain/domain"
	explainout "synmap/internal/modules/explain/port/out"
	"synmap/internal/platform/clock"
	apperrors "synmap/internal/platform/errors"
)

type ExplainService struct {
	clock    clock.Clock
	provider explainout.ModelProvider
}

func NewExplainService(clock clock.Clock, provider explainout.ModelProvider) *ExplainService {
	return &ExplainService{clock: clock, provider: provider}
}

func (s *ExplainService) Explain(ctx context.Context, topic string) (domain.Explanation, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.Explanation{}, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidInput)
	}

	body, err := s.provider.Complete(ctx, detailPrompt(topic))
	if err != nil {
		return domain.Explanation{}, err
	}
	if strings.TrimSpace(body) == "" {
		return domain.Explanation{}, fmt.Errorf("%w: empty explanation for %q", apperrors.ErrProvider, topic)
	}

	return domain.Explanation{
		Topic:       topic,
		Body:        strings.TrimSpace(body),
		GeneratedAt: s.clock.Now(),
	}, nil
}
