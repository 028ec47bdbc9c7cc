// file: internal/mcptype/completion.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"
import "github.com/mcpcore/mcp/internal/mcperror"

// CompletionArgument is the single argument being completed.
type CompletionArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CompleteRequest asks the server for completion candidates for one
// argument of a prompt or resource template, identified by Ref.
type CompleteRequest struct {
	Ref      Reference          `json:"ref"`
	Argument CompletionArgument `json:"argument"`
	Meta     Meta               `json:"_meta,omitempty"`
}

func (CompleteRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (CompleteRequest) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodCompletionComplete)
}

// Completion carries the candidate values for a CompleteRequest. Values
// must not exceed 100 entries (§3 invariant); Total, when known, reports
// the full candidate count regardless of how many Values were returned.
type Completion struct {
	Values  []string `json:"values"`
	Total   *int     `json:"total,omitempty"`
	HasMore bool     `json:"hasMore,omitempty"`
}

// NewCompletion validates the ≤100 values invariant before construction.
func NewCompletion(values []string, total *int, hasMore bool) (Completion, error) {
	if len(values) > 100 {
		return Completion{}, mcperror.NewConstructionError(
			"completion: values must not exceed 100 entries",
			map[string]interface{}{"field": "values", "length": len(values)},
		)
	}
	return Completion{Values: append([]string(nil), values...), Total: total, HasMore: hasMore}, nil
}

// CompleteResult wraps a Completion as a result envelope.
type CompleteResult struct {
	Completion Completion `json:"completion"`
	Meta       Meta       `json:"_meta,omitempty"`
}

func (CompleteResult) mcpServerResult() {}
