package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"synmap/internal/modules/mindmap/domain"
	mindmapout "synmap/internal/modules/mindmap/port/out"
)

// EChartsRenderer writes the mind map as a standalone HTML page with a
// force-directed graph. Links reference nodes by index because labels can
// repeat across branches.
type EChartsRenderer struct{}

func NewEChartsRenderer() mindmapout.MapRenderer {
	return &EChartsRenderer{}
}

func (r *EChartsRenderer) Render(_ context.Context, state domain.State, outPath string) error {
	nodes := make([]opts.GraphNode, 0, len(state.Nodes))
	index := make(map[string]int, len(state.Nodes))
	for i, n := range state.Nodes {
		index[n.ID] = i
		nodes = append(nodes, opts.GraphNode{
			Name:       n.Label,
			SymbolSize: n.Size,
			ItemStyle:  &opts.ItemStyle{Color: n.Color},
		})
	}
	links := make([]opts.GraphLink, 0, len(state.Edges))
	for _, e := range state.Edges {
		source, ok := index[e.SourceID]
		if !ok {
			return fmt.Errorf("edge source %q not in node set", e.SourceID)
		}
		target, ok := index[e.TargetID]
		if !ok {
			return fmt.Errorf("edge target %q not in node set", e.TargetID)
		}
		links = append(links, opts.GraphLink{Source: source, Target: target})
	}

	page := components.NewPage()
	page.AddCharts(mapChart(state.RootTopic, nodes, links))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create render dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create render file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func mapChart(title string, nodes []opts.GraphNode, links []opts.GraphLink) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries(
		"mindmap",
		nodes,
		links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Draggable: opts.Bool(true),
			Roam:      opts.Bool(true),
			Force:     &opts.GraphForce{Repulsion: 400},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)
	return graph
}
