// Package mcptype is the L1 type model: every MCP request, notification,
// result, and content entity, each a tagged variant with constructor
// invariants enforced by the internal/builder package. mcptype has no
// dependency on the codec; the codec depends on it.
// file: internal/mcptype/families.go
package mcptype

import "github.com/mcpcore/mcp/internal/jsonrpc"

// Family marker interfaces. A concrete type may inhabit more than one
// family (PingRequest is both a ClientRequest and a ServerRequest).
// Membership is a property of the type, not of the instance: just "this
// type implements this interface", with no state. The codec's
// direction-aware decode dispatch keys on its per-direction method tables,
// not on these interfaces.

// ClientRequest is implemented by every request type the client may issue.
type ClientRequest interface {
	mcpClientRequest()
	Method() jsonrpc.Method
}

// ServerRequest is implemented by every request type the server may issue.
type ServerRequest interface {
	mcpServerRequest()
	Method() jsonrpc.Method
}

// ClientNotification is implemented by every notification the client may send.
type ClientNotification interface {
	mcpClientNotification()
	Method() jsonrpc.Method
}

// ServerNotification is implemented by every notification the server may send.
type ServerNotification interface {
	mcpServerNotification()
	Method() jsonrpc.Method
}

// ClientResult is implemented by every result the client may return.
type ClientResult interface {
	mcpClientResult()
}

// ServerResult is implemented by every result the server may return.
type ServerResult interface {
	mcpServerResult()
}
