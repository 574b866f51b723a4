package service

import (
	"context"
	"fmt"
	"time"

	"synmap/internal/modules/mindmap/domain"
	mindmapout "synmap/internal/modules/mindmap/port/out"
	"synmap/internal/platform/clock"
	"synmap/internal/platform/id"
)

// MapService owns the session state lifecycle. Persistence only happens
// here, after a generation has fully succeeded; failures upstream never
// reach the store.
type MapService struct {
	clock      clock.Clock
	idGen      id.Generator
	stateStore mindmapout.StateStore
	history    mindmapout.HistoryProjector
}

func NewMapService(clk clock.Clock, idGen id.Generator, stateStore mindmapout.StateStore, history mindmapout.HistoryProjector) *MapService {
	return &MapService{clock: clk, idGen: idGen, stateStore: stateStore, history: history}
}

func (s *MapService) Now() time.Time {
	return s.clock.Now()
}

func (s *MapService) Current(ctx context.Context) (domain.State, error) {
	return s.stateStore.Load(ctx)
}

// Commit replaces the stored state and records a history row for it.
func (s *MapService) Commit(ctx context.Context, state domain.State, source string) error {
	if err := s.stateStore.Save(ctx, state); err != nil {
		return fmt.Errorf("save mind map state: %w", err)
	}
	gen := domain.Generation{
		ID:        s.idGen.New(),
		RootTopic: state.RootTopic,
		Source:    source,
		NodeCount: len(state.Nodes),
		EdgeCount: len(state.Edges),
		Depth:     state.Depth,
		CreatedAt: s.clock.Now(),
	}
	if err := s.history.Record(ctx, gen); err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// Select stores a topic selection with its explanation on the current state.
func (s *MapService) Select(ctx context.Context, topic, explanation string) (domain.State, error) {
	state, err := s.stateStore.Load(ctx)
	if err != nil {
		return domain.State{}, err
	}
	state = state.WithSelection(topic, explanation)
	if err := s.stateStore.Save(ctx, state); err != nil {
		return domain.State{}, fmt.Errorf("save mind map state: %w", err)
	}
	return state, nil
}

func (s *MapService) Reset(ctx context.Context) error {
	return s.stateStore.Clear(ctx)
}

func (s *MapService) History(ctx context.Context, limit int) ([]domain.Generation, error) {
	return s.history.List(ctx, limit)
}
