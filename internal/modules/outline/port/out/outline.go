package out

import "context"

// ModelProvider is the remote LLM boundary: one prompt in, one text payload
// out. Implementations do not retry; a failed call surfaces as-is and the
// caller returns control to the user.
type ModelProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
