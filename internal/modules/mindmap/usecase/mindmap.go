package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	explaindto "synmap/internal/modules/explain/dto"
	explainin "synmap/internal/modules/explain/port/in"
	exportdto "synmap/internal/modules/export/dto"
	exportin "synmap/internal/modules/export/port/in"
	"synmap/internal/modules/mindmap/domain"
	"synmap/internal/modules/mindmap/dto"
	mindmapin "synmap/internal/modules/mindmap/port/in"
	mindmapout "synmap/internal/modules/mindmap/port/out"
	"synmap/internal/modules/mindmap/service"
	outlinedto "synmap/internal/modules/outline/dto"
	outlinein "synmap/internal/modules/outline/port/in"
	apperrors "synmap/internal/platform/errors"
)

// Interactor is the session orchestrator. It drives outline generation and
// explanations through their own usecases and keeps the persisted state
// consistent: state is only ever written after the whole pipeline succeeded.
type Interactor struct {
	svc       *service.MapService
	outline   outlinein.Usecase
	explainer explainin.Usecase
	exporter  exportin.Usecase
	extractor mindmapout.SyllabusExtractor
	renderer  mindmapout.MapRenderer
}

func NewInteractor(
	svc *service.MapService,
	outline outlinein.Usecase,
	explainer explainin.Usecase,
	exporter exportin.Usecase,
	extractor mindmapout.SyllabusExtractor,
	renderer mindmapout.MapRenderer,
) mindmapin.Usecase {
	return &Interactor{
		svc:       svc,
		outline:   outline,
		explainer: explainer,
		exporter:  exporter,
		extractor: extractor,
		renderer:  renderer,
	}
}

func (i *Interactor) Generate(ctx context.Context, input dto.GenerateInput) (dto.GenerateOutput, error) {
	text := input.Text
	source := domain.SourceText
	if input.FilePath != "" {
		extracted, err := i.extractor.Extract(ctx, input.FilePath)
		if err != nil {
			return dto.GenerateOutput{}, fmt.Errorf("extract syllabus: %w", err)
		}
		text = extracted
		source = domain.SourceFile
	}
	if strings.TrimSpace(text) == "" {
		return dto.GenerateOutput{}, fmt.Errorf("%w: provide syllabus text or a file", apperrors.ErrInvalidInput)
	}

	outline, err := i.outline.Generate(ctx, outlinedto.GenerateInput{Text: text})
	if err != nil {
		return dto.GenerateOutput{}, err
	}

	state := i.newState(outline)
	if err := i.svc.Commit(ctx, state, source); err != nil {
		return dto.GenerateOutput{}, err
	}
	return generateOutput(state), nil
}

// DrillDown regenerates the map with the given topic as its root and
// extends the breadcrumb path. The previous state survives any failure.
func (i *Interactor) DrillDown(ctx context.Context, input dto.DrillDownInput) (dto.GenerateOutput, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return dto.GenerateOutput{}, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidInput)
	}
	prev, err := i.svc.Current(ctx)
	if err != nil {
		return dto.GenerateOutput{}, err
	}

	outline, err := i.outline.Generate(ctx, outlinedto.GenerateInput{Text: topic})
	if err != nil {
		return dto.GenerateOutput{}, err
	}

	state := i.newState(outline)
	state = state.WithPath(append(slices.Clone(prev.Path), topic))
	if err := i.svc.Commit(ctx, state, domain.SourceDrillDown); err != nil {
		return dto.GenerateOutput{}, err
	}
	return generateOutput(state), nil
}

func (i *Interactor) Explain(ctx context.Context, input dto.ExplainInput) (dto.ExplainOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return dto.ExplainOutput{}, err
	}
	topic := strings.TrimSpace(input.Topic)
	if input.NodeID != "" {
		resolved, ok := state.TopicFor(input.NodeID)
		if !ok {
			return dto.ExplainOutput{}, fmt.Errorf("%w: node %q", apperrors.ErrNotFound, input.NodeID)
		}
		topic = resolved
	}
	if topic == "" {
		return dto.ExplainOutput{}, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidInput)
	}

	detail, err := i.explainer.Explain(ctx, explaindto.ExplainInput{Topic: topic})
	if err != nil {
		return dto.ExplainOutput{}, err
	}
	if _, err := i.svc.Select(ctx, detail.Topic, detail.Body); err != nil {
		return dto.ExplainOutput{}, err
	}
	return dto.ExplainOutput{Topic: detail.Topic, Body: detail.Body, NotePath: detail.NotePath}, nil
}

func (i *Interactor) Show(ctx context.Context) (dto.StateOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return stateOutput(state), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.HistoryItemOutput, error) {
	gens, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	items := make([]dto.HistoryItemOutput, 0, len(gens))
	for _, g := range gens {
		items = append(items, dto.HistoryItemOutput{
			ID:        g.ID,
			RootTopic: g.RootTopic,
			Source:    g.Source,
			NodeCount: g.NodeCount,
			EdgeCount: g.EdgeCount,
			Depth:     g.Depth,
			CreatedAt: g.CreatedAt,
		})
	}
	return items, nil
}

func (i *Interactor) Render(ctx context.Context, outPath string) (dto.RenderOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if err := i.renderer.Render(ctx, state, outPath); err != nil {
		return dto.RenderOutput{}, fmt.Errorf("render mind map: %w", err)
	}
	return dto.RenderOutput{Path: outPath}, nil
}

// Export hands the currently selected explanation to an exporter.
func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	if state.SelectedTopic == "" || state.Explanation == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: explain a topic before exporting", apperrors.ErrNothingSelected)
	}
	out, err := i.exporter.Export(ctx, exportdto.ExportInput{
		Title:    state.SelectedTopic,
		Markdown: state.Explanation,
		Format:   input.Format,
	})
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: out.Path}, nil
}

func (i *Interactor) newState(outline outlinedto.OutlineOutput) domain.State {
	nodes := make([]domain.Node, 0, len(outline.Nodes))
	for _, n := range outline.Nodes {
		nodes = append(nodes, domain.Node{ID: n.ID, Label: n.Label, Tier: n.Tier, Size: n.Size, Color: n.Color})
	}
	edges := make([]domain.Edge, 0, len(outline.Edges))
	for _, e := range outline.Edges {
		edges = append(edges, domain.Edge{SourceID: e.SourceID, TargetID: e.TargetID})
	}
	return domain.NewState(outline.RootTopic, nodes, edges, outline.Labels, outline.Depth, i.svc.Now())
}

func generateOutput(state domain.State) dto.GenerateOutput {
	return dto.GenerateOutput{
		RootTopic: state.RootTopic,
		NodeCount: len(state.Nodes),
		EdgeCount: len(state.Edges),
		Depth:     state.Depth,
		Path:      state.Path,
	}
}

func stateOutput(state domain.State) dto.StateOutput {
	nodes := make([]dto.NodeOutput, 0, len(state.Nodes))
	for _, n := range state.Nodes {
		nodes = append(nodes, dto.NodeOutput{ID: n.ID, Label: n.Label, Tier: n.Tier, Size: n.Size, Color: n.Color})
	}
	edges := make([]dto.EdgeOutput, 0, len(state.Edges))
	for _, e := range state.Edges {
		edges = append(edges, dto.EdgeOutput{SourceID: e.SourceID, TargetID: e.TargetID})
	}
	return dto.StateOutput{
		RootTopic:     state.RootTopic,
		Nodes:         nodes,
		Edges:         edges,
		Depth:         state.Depth,
		SelectedTopic: state.SelectedTopic,
		Explanation:   state.Explanation,
		Path:          state.Path,
		GeneratedAt:   state.GeneratedAt,
	}
}
