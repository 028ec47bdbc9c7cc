// file: internal/mcptype/prompts.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// PromptArgument describes one named, optionally-required argument a prompt accepts.
type PromptArgument struct {
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Prompt describes a reusable prompt template exposed by the server.
type Prompt struct {
	Name        string           `json:"name"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Arguments   []PromptArgument `json:"arguments,omitempty"`
	Icons       []Icon           `json:"icons,omitempty"`
	Meta        Meta             `json:"_meta,omitempty"`
}

// PromptMessage is one rendered turn of a prompt template.
type PromptMessage struct {
	Role    Role    `json:"role"`
	Content Content `json:"content"`
}

// ListPromptsRequest lists the server's prompt catalog.
type ListPromptsRequest struct {
	Cursor string `json:"cursor,omitempty"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (ListPromptsRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ListPromptsRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodPromptsList) }

// ListPromptsResult is the paginated prompt catalog.
type ListPromptsResult struct {
	Prompts    []Prompt `json:"prompts"`
	NextCursor string   `json:"nextCursor,omitempty"`
	Meta       Meta     `json:"_meta,omitempty"`
}

func (ListPromptsResult) mcpServerResult() {}

// GetPromptRequest renders a named prompt with the given arguments.
type GetPromptRequest struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments,omitempty"`
	Meta      Meta              `json:"_meta,omitempty"`
}

func (GetPromptRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (GetPromptRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodPromptsGet) }

// GetPromptResult carries a prompt's rendered messages.
type GetPromptResult struct {
	Description string          `json:"description,omitempty"`
	Messages    []PromptMessage `json:"messages"`
	Meta        Meta            `json:"_meta,omitempty"`
}

func (GetPromptResult) mcpServerResult() {}

// PromptListChangedNotification tells the client the prompt catalog changed.
type PromptListChangedNotification struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (PromptListChangedNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (PromptListChangedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsPromptsListChanged)
}
