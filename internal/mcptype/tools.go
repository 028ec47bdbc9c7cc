// file: internal/mcptype/tools.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// ToolAnnotations are untrusted hints about a tool's behavior, supplied by
// whoever registers the tool rather than verified by the protocol core.
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// Tool describes a callable exposed by the server.
type Tool struct {
	Name         string                 `json:"name"`
	Title        string                 `json:"title,omitempty"`
	Description  string                 `json:"description,omitempty"`
	InputSchema  map[string]interface{} `json:"inputSchema"`
	OutputSchema map[string]interface{} `json:"outputSchema,omitempty"`
	Icons        []Icon                 `json:"icons,omitempty"`
	Annotations  *ToolAnnotations       `json:"annotations,omitempty"`
	Meta         Meta                   `json:"_meta,omitempty"`
}

// ListToolsRequest lists the tools the server currently exposes.
type ListToolsRequest struct {
	Cursor string `json:"cursor,omitempty"`
	Meta   Meta   `json:"_meta,omitempty"`
}

func (ListToolsRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (ListToolsRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodToolsList) }

// ListToolsResult is the paginated tool catalog.
type ListToolsResult struct {
	Tools      []Tool `json:"tools"`
	NextCursor string `json:"nextCursor,omitempty"`
	Meta       Meta   `json:"_meta,omitempty"`
}

func (ListToolsResult) mcpServerResult() {}

// CallToolRequest invokes a named tool with the given arguments.
type CallToolRequest struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
	Meta      Meta                   `json:"_meta,omitempty"`
}

func (CallToolRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (CallToolRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodToolsCall) }

// CallToolResult carries a tool's output content blocks and/or structured result.
type CallToolResult struct {
	Content           []Content              `json:"content"`
	StructuredContent map[string]interface{} `json:"structuredContent,omitempty"`
	IsError           bool                   `json:"isError,omitempty"`
	Meta              Meta                   `json:"_meta,omitempty"`
}

func (CallToolResult) mcpServerResult() {}

// ToolListChangedNotification tells the client the tool catalog changed.
type ToolListChangedNotification struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (ToolListChangedNotification) mcpServerNotification() {}

// Method implements ServerNotification.
func (ToolListChangedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsToolsListChanged)
}
