package domain

import "time"

const SchemaVersion = 1

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tier  int    `json:"tier"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type Edge struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// State is the whole per-session mind map: the rendered graph, the selected
// topic with its explanation, and the breadcrumb path of drill-downs. It is
// replaced wholesale on every successful generation and only an explicit
// reset clears it.
type State struct {
	SchemaVersion int               `json:"schema_version"`
	RootTopic     string            `json:"root_topic"`
	Nodes         []Node            `json:"nodes"`
	Edges         []Edge            `json:"edges"`
	Labels        map[string]string `json:"labels"`
	Depth         int               `json:"depth"`
	SelectedTopic string            `json:"selected_topic"`
	Explanation   string            `json:"explanation"`
	Path          []string          `json:"path"`
	GeneratedAt   time.Time         `json:"generated_at"`
}

func NewState(rootTopic string, nodes []Node, edges []Edge, labels map[string]string, depth int, at time.Time) State {
	return State{
		SchemaVersion: SchemaVersion,
		RootTopic:     rootTopic,
		Nodes:         nodes,
		Edges:         edges,
		Labels:        labels,
		Depth:         depth,
		Path:          []string{rootTopic},
		GeneratedAt:   at,
	}
}

func (s State) HasMap() bool {
	return len(s.Nodes) > 0
}

// TopicFor resolves an activated node id back to its topic name.
func (s State) TopicFor(nodeID string) (string, bool) {
	topic, ok := s.Labels[nodeID]
	return topic, ok
}

func (s State) WithPath(path []string) State {
	s.Path = path
	return s
}

// WithSelection records a node-click explanation lookup. The breadcrumb
// path is deliberately untouched; only drill-downs extend it.
func (s State) WithSelection(topic, explanation string) State {
	s.SelectedTopic = topic
	s.Explanation = explanation
	return s
}

// Generation is one history row, recorded per successful generation.
type Generation struct {
	ID        string
	RootTopic string
	Source    string
	NodeCount int
	EdgeCount int
	Depth     int
	CreatedAt time.Time
}

const (
	SourceFile      = "file"
	SourceText      = "text"
	SourceDrillDown = "drill-down"
)
