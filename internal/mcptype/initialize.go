// file: internal/mcptype/initialize.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// InitializeRequest opens an MCP session, declaring the client's supported
// protocol version and capabilities.
type InitializeRequest struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
	Meta            Meta               `json:"_meta,omitempty"`
}

func (InitializeRequest) mcpClientRequest() {}

// Method implements ClientRequest.
func (InitializeRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodInitialize) }

// InitializeResult answers an InitializeRequest with the server's chosen
// protocol version and declared capabilities.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
	Meta            Meta               `json:"_meta,omitempty"`
}

func (InitializeResult) mcpServerResult() {}

// InitializedNotification confirms the client has processed InitializeResult
// and the session is ready for normal operation.
type InitializedNotification struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (InitializedNotification) mcpClientNotification() {}

// Method implements ClientNotification.
func (InitializedNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsInitialized)
}

// PingRequest is a liveness check either side may send — the one type that
// inhabits both the ClientRequest and ServerRequest families (§4.1).
type PingRequest struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (PingRequest) mcpClientRequest() {}
func (PingRequest) mcpServerRequest() {}

// Method implements ClientRequest and ServerRequest.
func (PingRequest) Method() jsonrpc.Method { return jsonrpc.NewMethod(jsonrpc.MethodPing) }

// EmptyResult answers a PingRequest (and any other request with no
// meaningful payload) with an empty object.
type EmptyResult struct {
	Meta Meta `json:"_meta,omitempty"`
}

func (EmptyResult) mcpClientResult() {}
func (EmptyResult) mcpServerResult() {}

// CancelledNotification tells the recipient that a previously-issued
// request, identified by RequestID, should be abandoned.
type CancelledNotification struct {
	RequestID jsonrpc.RequestID `json:"requestId"`
	Reason    string            `json:"reason,omitempty"`
}

func (CancelledNotification) mcpClientNotification() {}
func (CancelledNotification) mcpServerNotification() {}

// Method implements ClientNotification and ServerNotification.
func (CancelledNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsCancelled)
}

// ProgressToken correlates a stream of ProgressNotification messages back to
// the request that requested progress updates.
type ProgressToken = jsonrpc.RequestID

// ProgressNotification reports incremental progress on a long-running request.
type ProgressNotification struct {
	ProgressToken ProgressToken `json:"progressToken"`
	Progress      float64       `json:"progress"`
	Total         *float64      `json:"total,omitempty"`
	Message       string        `json:"message,omitempty"`
}

func (ProgressNotification) mcpClientNotification() {}
func (ProgressNotification) mcpServerNotification() {}

// Method implements ClientNotification and ServerNotification.
func (ProgressNotification) Method() jsonrpc.Method {
	return jsonrpc.NewMethod(jsonrpc.MethodNotificationsProgress)
}
