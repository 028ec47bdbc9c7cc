// file: internal/mcptype/annotations.go
package mcptype

import (
	"github.com/mcpcore/mcp/internal/mcperror"
)

// Role identifies the sender or intended recipient of a piece of content.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Annotations carries optional hints about content: who it is intended for
// and how important it is relative to other content in the same message.
type Annotations struct {
	Audience     []Role   `json:"audience,omitempty"`
	Priority     *float64 `json:"priority,omitempty"`
	LastModified string   `json:"lastModified,omitempty"`
}

// NewAnnotations validates priority ∈ [0.0, 1.0] when set and returns the
// constructed value. Builders call this rather than duplicating the range
// check at every content-block builder.
func NewAnnotations(audience []Role, priority *float64, lastModified string) (Annotations, error) {
	if priority != nil && (*priority < 0.0 || *priority > 1.0) {
		return Annotations{}, mcperror.NewConstructionError(
			"annotations: priority must be in [0.0, 1.0]",
			map[string]interface{}{"field": "priority", "value": *priority},
		)
	}
	audienceCopy := append([]Role(nil), audience...)
	return Annotations{Audience: audienceCopy, Priority: priority, LastModified: lastModified}, nil
}
