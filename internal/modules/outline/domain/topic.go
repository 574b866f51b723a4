package domain

import "strings"

// Topic is one node of the model-produced outline tree: a name plus
// optional sub-topics. Trees arrive fresh from the model on every
// generation, so there are no cycles to guard against.
type Topic struct {
	Name     string  `json:"name"`
	Children []Topic `json:"children,omitempty"`
}

// Empty reports whether the decoded structure carries nothing to show.
func (t Topic) Empty() bool {
	return strings.TrimSpace(t.Name) == "" && len(t.Children) == 0
}
