// Package codec is the L2 polymorphic dispatch engine: it turns a
// classified jsonrpc.RawMessage into a typed mcptype request, notification,
// or result, and turns a typed value back into wire bytes. It depends on
// mcptype and jsonrpc but nothing above them.
// file: internal/codec/dispatch.go
package codec

import (
	"encoding/json"
	"sync"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
)

// requestDecoder unmarshals params into a concrete ClientRequest/ServerRequest.
type requestDecoder func(params json.RawMessage) (interface{}, error)

// notificationDecoder unmarshals params into a concrete notification.
type notificationDecoder func(params json.RawMessage) (interface{}, error)

var (
	clientRequestTable     map[string]requestDecoder
	serverRequestTable     map[string]requestDecoder
	clientNotificationTable map[string]notificationDecoder
	serverNotificationTable map[string]notificationDecoder
	dispatchTablesOnce     sync.Once
)

// Direction tells DecodeRequest/DecodeNotification which side's dispatch
// table to consult when a method name (like "ping") appears in both.
type Direction int

const (
	// DirectionServerInbound decodes a request/notification the server is
	// receiving from a client (client-originated methods).
	DirectionServerInbound Direction = iota
	// DirectionClientInbound decodes a request/notification the client is
	// receiving from a server (server-originated methods).
	DirectionClientInbound
)

func decodeInto[T any](params json.RawMessage) (interface{}, error) {
	var v T
	if len(params) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "params"})
	}
	return v, nil
}

func initDispatchTables() {
	dispatchTablesOnce.Do(func() {
		clientRequestTable = map[string]requestDecoder{
			jsonrpc.MethodInitialize:             decodeInto[mcptype.InitializeRequest],
			jsonrpc.MethodPing:                    decodeInto[mcptype.PingRequest],
			jsonrpc.MethodToolsList:                decodeInto[mcptype.ListToolsRequest],
			jsonrpc.MethodToolsCall:                decodeInto[mcptype.CallToolRequest],
			jsonrpc.MethodResourcesList:            decodeInto[mcptype.ListResourcesRequest],
			jsonrpc.MethodResourcesRead:            decodeInto[mcptype.ReadResourceRequest],
			jsonrpc.MethodResourcesSubscribe:       decodeInto[mcptype.SubscribeRequest],
			jsonrpc.MethodResourcesUnsubscribe:     decodeInto[mcptype.UnsubscribeRequest],
			jsonrpc.MethodResourcesTemplatesList:   decodeInto[mcptype.ListResourceTemplatesRequest],
			jsonrpc.MethodPromptsList:               decodeInto[mcptype.ListPromptsRequest],
			jsonrpc.MethodPromptsGet:                decodeInto[mcptype.GetPromptRequest],
			jsonrpc.MethodCompletionComplete:        decodeCompleteRequest,
			jsonrpc.MethodLoggingSetLevel:           decodeInto[mcptype.SetLevelRequest],
			jsonrpc.MethodRootsList:                 decodeInto[mcptype.ListRootsRequest],
			jsonrpc.MethodTasksGet:                  decodeInto[mcptype.GetTaskRequest],
			jsonrpc.MethodTasksResult:               decodeInto[mcptype.GetTaskResultRequest],
			jsonrpc.MethodTasksList:                 decodeInto[mcptype.ListTasksRequest],
			jsonrpc.MethodTasksCancel:                decodeInto[mcptype.CancelTaskRequest],
		}
		serverRequestTable = map[string]requestDecoder{
			jsonrpc.MethodPing:                  decodeInto[mcptype.PingRequest],
			jsonrpc.MethodSamplingCreateMessage: decodeInto[mcptype.CreateMessageRequest],
			jsonrpc.MethodElicitationCreate:      decodeInto[mcptype.ElicitRequest],
			jsonrpc.MethodRootsList:              decodeInto[mcptype.ListRootsRequest],
		}
		clientNotificationTable = map[string]notificationDecoder{
			jsonrpc.MethodNotificationsInitialized:      decodeInto[mcptype.InitializedNotification],
			jsonrpc.MethodNotificationsCancelled:        decodeInto[mcptype.CancelledNotification],
			jsonrpc.MethodNotificationsProgress:         decodeInto[mcptype.ProgressNotification],
			jsonrpc.MethodNotificationsRootsListChanged: decodeInto[mcptype.RootsListChangedNotification],
		}
		serverNotificationTable = map[string]notificationDecoder{
			jsonrpc.MethodNotificationsCancelled:                decodeInto[mcptype.CancelledNotification],
			jsonrpc.MethodNotificationsProgress:                 decodeInto[mcptype.ProgressNotification],
			jsonrpc.MethodNotificationsMessage:                  decodeInto[mcptype.LoggingMessageNotification],
			jsonrpc.MethodNotificationsResourcesUpdated:         decodeInto[mcptype.ResourceUpdatedNotification],
			jsonrpc.MethodNotificationsResourcesListChanged:     decodeInto[mcptype.ResourceListChangedNotification],
			jsonrpc.MethodNotificationsToolsListChanged:         decodeInto[mcptype.ToolListChangedNotification],
			jsonrpc.MethodNotificationsPromptsListChanged:       decodeInto[mcptype.PromptListChangedNotification],
			jsonrpc.MethodNotificationsTasksStatus:              decodeInto[mcptype.TaskStatusNotification],
		}
	})
}

// CustomRequest is the fallback for a request method outside the closed set.
type CustomRequest struct {
	MethodName string
	Params     json.RawMessage
}

// CustomNotification is the fallback for a notification method outside the closed set.
type CustomNotification struct {
	MethodName string
	Params     json.RawMessage
}

// DecodeRequestParams dispatches on method name per §4.2's request dispatch
// order: matching table for dir first, falling back to CustomRequest.
func DecodeRequestParams(dir Direction, method string, params json.RawMessage) (interface{}, error) {
	initDispatchTables()
	table := clientRequestTable
	if dir == DirectionClientInbound {
		table = serverRequestTable
	}
	if decode, ok := table[method]; ok {
		return decode(params)
	}
	return CustomRequest{MethodName: method, Params: params}, nil
}

// DecodeNotificationParams dispatches on method name per §4.2's
// notification dispatch order: matching table for dir first, falling back
// to CustomNotification.
func DecodeNotificationParams(dir Direction, method string, params json.RawMessage) (interface{}, error) {
	initDispatchTables()
	table := clientNotificationTable
	if dir == DirectionClientInbound {
		table = serverNotificationTable
	}
	if decode, ok := table[method]; ok {
		return decode(params)
	}
	return CustomNotification{MethodName: method, Params: params}, nil
}
