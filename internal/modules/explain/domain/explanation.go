package domain

import "time"

const SchemaVersion = 1

// Managed block markers wrap the generated body inside a topic note so a
// regeneration replaces only the generated part and leaves the user's own
// notes around it alone.
const (
	ManagedBodyStart = "<!-- synmap:explanation:start -->"
	ManagedBodyEnd   = "<!-- synmap:explanation:end -->"
)

// Explanation is one generated topic explanation, markdown-formatted.
type Explanation struct {
	Topic       string
	Body        string
	GeneratedAt time.Time
}
