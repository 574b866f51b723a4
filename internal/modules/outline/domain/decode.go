package domain

import (
	"encoding/json"
	"strings"
)

// DecodeOutline parses a raw model response into a Topic tree. The model is
// told to answer with bare JSON but frequently wraps it in a fenced code
// block anyway, so a leading ```json (or plain ```) fence and its closing
// marker are stripped before unmarshalling.
func DecodeOutline(raw string) (Topic, error) {
	stripped := StripFence(raw)
	root := Topic{}
	if err := json.Unmarshal([]byte(stripped), &root); err != nil {
		return Topic{}, &FormatError{Raw: raw, Err: err}
	}
	if root.Empty() {
		return Topic{}, ErrEmptyOutline
	}
	return root, nil
}

// StripFence removes a surrounding markdown code fence, if present. Content
// that is not fenced passes through untouched apart from whitespace trimming.
func StripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}
