// file: internal/mcptype/sampling.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// SamplingMessage is one turn in the conversation handed to sampling/createMessage.
type SamplingMessage struct {
	Role    Role    `json:"role"`
	Content Content `json:"content"`
}

// IncludeContext controls how much of the surrounding MCP context a server
// may splice into a sampling request sent upstream to the client's LLM.
type IncludeContext string

const (
	IncludeContextNone       IncludeContext = "none"
	IncludeContextThisServer IncludeContext = "thisServer"
	IncludeContextAllServers IncludeContext = "allServers"
)

// CreateMessageRequest asks the client to sample from an LLM on the
// server's behalf. It is a ServerRequest: only a server may originate it.
type CreateMessageRequest struct {
	Messages         []SamplingMessage      `json:"messages"`
	ModelPreferences *ModelPreferences      `json:"modelPreferences,omitempty"`
	SystemPrompt     string                 `json:"systemPrompt,omitempty"`
	IncludeContext   IncludeContext         `json:"includeContext,omitempty"`
	Temperature      *float64               `json:"temperature,omitempty"`
	MaxTokens        int                    `json:"maxTokens"`
	StopSequences    []string               `json:"stopSequences,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	Meta             Meta                   `json:"_meta,omitempty"`
}

func (CreateMessageRequest) mcpServerRequest() {}

// Method implements ServerRequest.
func (CreateMessageRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodSamplingCreateMessage) }

// CreateMessageResult carries the client's sampled completion back to the server.
type CreateMessageResult struct {
	Role       Role    `json:"role"`
	Content    Content `json:"content"`
	Model      string  `json:"model"`
	StopReason string  `json:"stopReason,omitempty"`
	Meta       Meta    `json:"_meta,omitempty"`
}

func (CreateMessageResult) mcpClientResult() {}
