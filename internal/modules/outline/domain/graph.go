package domain

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"
)

// Node is a renderable mind-map node. Tier is the depth from the root and
// only selects the visual style.
type Node struct {
	ID    string
	Label string
	Tier  int
	Size  int
	Color string
}

// Edge is a directed parent→child link between two node ids of the same
// conversion pass.
type Edge struct {
	SourceID string
	TargetID string
}

// Graph is the flattened form of a Topic tree. Labels maps every node id
// back to its topic name so an activated node can be resolved to a topic.
type Graph struct {
	Nodes  []Node
	Edges  []Edge
	Labels map[string]string
	Depth  int
}

type tierStyle struct {
	Size  int
	Color string
}

// The root gets a unique style; tiers 1 through 6 shrink progressively and
// everything deeper shares one "deep" style.
var (
	rootStyle  = tierStyle{Size: 25, Color: "#f9a825"}
	tierStyles = [6]tierStyle{
		{Size: 20, Color: "#42a5f5"},
		{Size: 17, Color: "#66bb6a"},
		{Size: 15, Color: "#ab47bc"},
		{Size: 13, Color: "#ff7043"},
		{Size: 11, Color: "#26a69a"},
		{Size: 9, Color: "#8d6e63"},
	}
	deepStyle = tierStyle{Size: 7, Color: "#90a4ae"}
)

func styleFor(tier int) tierStyle {
	switch {
	case tier == 0:
		return rootStyle
	case tier <= len(tierStyles):
		return tierStyles[tier-1]
	default:
		return deepStyle
	}
}

type frame struct {
	topic    Topic
	parentID string
	tier     int
}

// BuildGraph flattens a Topic tree into nodes and parent→child edges.
//
// Node ids are content-addressed: each id hashes the parent id together with
// the node's own name, so the full path from the root feeds every id and the
// same tree always yields the same ids. Two siblings sharing both parent and
// name are disambiguated with an ordinal, so duplicate model output renders
// as distinct nodes instead of silently merging.
//
// The traversal uses an explicit stack; model output is untrusted and may
// nest arbitrarily deep. Siblings are visited in input order.
func BuildGraph(root Topic) (Graph, error) {
	g := Graph{Labels: map[string]string{}}
	ordinals := map[string]int{}

	stack := []frame{{topic: root, tier: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := strings.TrimSpace(f.topic.Name)
		if name == "" {
			return Graph{}, &StructureError{Parent: g.Labels[f.parentID]}
		}

		key := f.parentID + "\x1f" + name
		ord := ordinals[key]
		ordinals[key] = ord + 1
		id := nodeID(key, ord)

		style := styleFor(f.tier)
		g.Nodes = append(g.Nodes, Node{
			ID:    id,
			Label: name,
			Tier:  f.tier,
			Size:  style.Size,
			Color: style.Color,
		})
		g.Labels[id] = name
		if f.tier > g.Depth {
			g.Depth = f.tier
		}
		if f.parentID != "" {
			g.Edges = append(g.Edges, Edge{SourceID: f.parentID, TargetID: id})
		}

		// Push children in reverse so pop order matches input order.
		for i := len(f.topic.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{topic: f.topic.Children[i], parentID: id, tier: f.tier + 1})
		}
	}
	return g, nil
}

func nodeID(key string, ordinal int) string {
	h := fnv.New64a()
	_, _ = io.WriteString(h, key)
	if ordinal > 0 {
		_, _ = fmt.Fprintf(h, "\x1f%d", ordinal)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
