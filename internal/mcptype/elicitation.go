// file: internal/mcptype/elicitation.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"
import "github.com/mcpcore/mcp/internal/mcperror"

// ElicitRequest asks the client to collect structured input from the user
// on the server's behalf, against a JSON-schema-shaped RequestedSchema.
type ElicitRequest struct {
	Message         string                 `json:"message"`
	RequestedSchema map[string]interface{} `json:"requestedSchema"`
	Meta            Meta                   `json:"_meta,omitempty"`
}

func (ElicitRequest) mcpServerRequest() {}

// Method implements ServerRequest.
func (ElicitRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodElicitationCreate) }

// ElicitAction is the user's disposition toward an elicitation prompt.
type ElicitAction string

const (
	ElicitActionAccept  ElicitAction = "accept"
	ElicitActionDecline ElicitAction = "decline"
	ElicitActionCancel  ElicitAction = "cancel"
)

// ElicitResult carries the user's response back to the server. Content is
// populated only when Action is accept; any other action must leave it nil
// (§3 invariant).
type ElicitResult struct {
	Action  ElicitAction           `json:"action"`
	Content map[string]interface{} `json:"content,omitempty"`
	Meta    Meta                   `json:"_meta,omitempty"`
}

func (ElicitResult) mcpClientResult() {}

// NewElicitResult enforces that Content is present if and only if Action is accept.
func NewElicitResult(action ElicitAction, content map[string]interface{}) (ElicitResult, error) {
	if action == ElicitActionAccept && content == nil {
		return ElicitResult{}, mcperror.NewConstructionError(
			"elicitResult: content is required when action is accept",
			map[string]interface{}{"field": "content", "action": string(action)},
		)
	}
	if action != ElicitActionAccept && content != nil {
		return ElicitResult{}, mcperror.NewConstructionError(
			"elicitResult: content must be empty unless action is accept",
			map[string]interface{}{"field": "content", "action": string(action)},
		)
	}
	return ElicitResult{Action: action, Content: content}, nil
}
