package usecase

import (
	"context"

	"synmap/internal/modules/outline/domain"
	"synmap/internal/modules/outline/dto"
	outlinein "synmap/internal/modules/outline/port/in"
	"synmap/internal/modules/outline/service"
)

type Interactor struct {
	svc *service.OutlineService
}

func NewInteractor(svc *service.OutlineService) outlinein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Generate(ctx context.Context, input dto.GenerateInput) (dto.OutlineOutput, error) {
	root, graph, err := i.svc.Generate(ctx, input.Text)
	if err != nil {
		return dto.OutlineOutput{}, err
	}
	return dto.OutlineOutput{
		RootTopic: root.Name,
		Nodes:     mapNodes(graph.Nodes),
		Edges:     mapEdges(graph.Edges),
		Labels:    graph.Labels,
		Depth:     graph.Depth,
	}, nil
}

func mapNodes(nodes []domain.Node) []dto.NodeOutput {
	out := make([]dto.NodeOutput, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, dto.NodeOutput{
			ID:    node.ID,
			Label: node.Label,
			Tier:  node.Tier,
			Size:  node.Size,
			Color: node.Color,
		})
	}
	return out
}

func mapEdges(edges []domain.Edge) []dto.EdgeOutput {
	out := make([]dto.EdgeOutput, 0, len(edges))
	for _, edge := range edges {
		out = append(out, dto.EdgeOutput{SourceID: edge.SourceID, TargetID: edge.TargetID})
	}
	return out
}
