package dto

type GenerateInput struct {
	Text string
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

type OutlineOutput struct {
	RootTopic string            `json:"root_topic"`
	Nodes     []NodeOutput      `json:"nodes"`
	Edges     []EdgeOutput      `json:"edges"`
	Labels    map[string]string `json:"labels"`
	Depth     int               `json:"depth"`
}
