package dto

import "time"

type GenerateInput struct {
	FilePath string
	Text     string
}

type GenerateOutput struct {
	RootTopic string   `json:"root_topic"`
	NodeCount int      `json:"node_count"`
	EdgeCount int      `json:"edge_count"`
	Depth     int      `json:"depth"`
	Path      []string `json:"path"`
}

type DrillDownInput struct {
	Topic string
}

type ExplainInput struct {
	NodeID string
	Topic  string
}

type ExplainOutput struct {
	Topic    string `json:"topic"`
	Body     string `json:"body"`
	NotePath string `json:"note_path,omitempty"`
}

type NodeOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tier  int    `json:"tier"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type EdgeOutput struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

type StateOutput struct {
	RootTopic     string       `json:"root_topic"`
	Nodes         []NodeOutput `json:"nodes"`
	Edges         []EdgeOutput `json:"edges"`
	Depth         int          `json:"depth"`
	SelectedTopic string       `json:"selected_topic,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	Path          []string     `json:"path"`
	GeneratedAt   time.Time    `json:"generated_at"`
}

type HistoryItemOutput struct {
	ID        string    `json:"id"`
	RootTopic string    `json:"root_topic"`
	Source    string    `json:"source"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
	Depth     int       `json:"depth"`
	CreatedAt time.Time `json:"created_at"`
}

type ExportInput struct {
	Format string
}

type ExportOutput struct {
	Path string `json:"path"`
}

type RenderOutput struct {
	Path string `json:"path"`
}
