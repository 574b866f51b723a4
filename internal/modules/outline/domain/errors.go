package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyOutline means the response parsed cleanly but holds no topics.
// Reported as a warning; existing session state is left untouched.
var ErrEmptyOutline = errors.New("model returned an empty outline")

// FormatError means the model response could not be parsed as the expected
// structure. Raw keeps the offending text so it can be shown for diagnosis.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("model response is not a valid outline: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// StructureError means the decoded tree is malformed (a topic without a
// name). The whole conversion aborts rather than producing a partial graph.
type StructureError struct {
	Parent string
}

func (e *StructureError) Error() string {
	if e.Parent == "" {
		return "outline root is missing a name"
	}
	return fmt.Sprintf("topic under %q is missing a name", e.Parent)
}

// Diagnostic formats err for display, appending a *FormatError's raw model
// response underneath the message.
func Diagnostic(err error) string {
	var formatErr *FormatError
	if errors.As(err, &formatErr) && strings.TrimSpace(formatErr.Raw) != "" {
		return fmt.Sprintf("%v\nmodel response was:\n%s", err, formatErr.Raw)
	}
	return err.Error()
}
