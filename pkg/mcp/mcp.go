// Package mcp is the module's stable public import path. It re-exports the
// type model, envelope, codec, and builder surfaces a consumer needs to
// encode and decode MCP messages, without exposing the internal/ package
// layout those pieces actually live in.
package mcp

// file: pkg/mcp/mcp.go

import (
	"github.com/mcpcore/mcp/internal/builder"
	"github.com/mcpcore/mcp/internal/codec"
	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/internal/transport"
)

// Protocol version helpers (§2).
var (
	LatestProtocolVersion       = jsonrpc.LatestProtocolVersion
	IsSupportedProtocolVersion  = jsonrpc.IsSupportedProtocolVersion
	SupportedProtocolVersions   = jsonrpc.SupportedProtocolVersions
)

// Envelope types and constructors (jsonrpc, §4.1).
type (
	RequestID     = jsonrpc.RequestID
	Method        = jsonrpc.Method
	Request       = jsonrpc.Request
	Notification  = jsonrpc.Notification
	Response      = jsonrpc.Response
	ErrorResponse = jsonrpc.ErrorResponse
	WireError     = jsonrpc.Error
)

var (
	NewStringID = jsonrpc.NewStringID
	NewNumberID = jsonrpc.NewNumberID
	NextRequestID = jsonrpc.NextRequestID
)

// Direction selects which side's dispatch table a decode call consults.
type Direction = codec.Direction

const (
	DirectionServerInbound = codec.DirectionServerInbound
	DirectionClientInbound = codec.DirectionClientInbound
)

// Encode/decode entry points (codec, §4.2-§4.3).
var (
	Decode              = codec.Decode
	EncodeRequest       = codec.EncodeRequest
	EncodeNotification  = codec.EncodeNotification
	EncodeResponse      = codec.EncodeResponse
	EncodeErrorResponse = codec.EncodeErrorResponse
	DecodeResult        = codec.DecodeResult
	DecodeContent       = codec.DecodeContent
	Validate            = codec.Validate
)

// Builders (§4.3) for the user-constructible request/result/content types.
var (
	NewInitializeRequestBuilder = builder.NewInitializeRequestBuilder
	NewCallToolRequestBuilder   = builder.NewCallToolRequestBuilder
	NewCallToolResultBuilder    = builder.NewCallToolResultBuilder
	NewElicitRequestBuilder     = builder.NewElicitRequestBuilder
	NewCreateMessageRequestBuilder = builder.NewCreateMessageRequestBuilder
	NewToolBuilder              = builder.NewToolBuilder
	NewResourceBuilder          = builder.NewResourceBuilder
	NewPromptBuilder            = builder.NewPromptBuilder
	NewTextContentBuilder       = builder.NewTextContentBuilder
	NewImageContentBuilder      = builder.NewImageContentBuilder
)

// Core type-model aliases (mcptype, §3) most callers construct or match on.
type (
	Tool             = mcptype.Tool
	Resource         = mcptype.Resource
	ResourceTemplate = mcptype.ResourceTemplate
	Prompt           = mcptype.Prompt
	Content          = mcptype.Content
	TextContent      = mcptype.TextContent
	ImageContent     = mcptype.ImageContent
	Task             = mcptype.Task
	TaskStatus       = mcptype.TaskStatus
)

// Error kinds and wire codes (mcperror).
var (
	ErrorToWire          = mcperror.ErrorToWire
	NewConstructionError = mcperror.NewConstructionError
	NewDecodeError       = mcperror.NewDecodeError
	NewEncodeError       = mcperror.NewEncodeError
	NewDispatchError     = mcperror.NewDispatchError
)

type McpError = mcperror.McpError

// Transport contract (§4.4): the callback-based interface a consumer
// implements or drives to move encoded frames over a real connection, plus
// the reference stream and in-memory implementations.
type (
	Transport      = transport.Transport
	SendOptions    = transport.SendOptions
	MessageHandler = transport.MessageHandler
	CloseHandler   = transport.CloseHandler
	ErrorHandler   = transport.ErrorHandler
)

var (
	NewStreamTransport       = transport.NewStreamTransport
	NewInMemoryTransportPair = transport.NewInMemoryTransportPair
	ValidateMessage          = transport.ValidateMessage
)
