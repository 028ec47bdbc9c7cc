// file: internal/jsonrpc/envelope.go
package jsonrpc

import (
	"encoding/json"

	"github.com/mcpcore/mcp/internal/mcperror"
)

// Error represents the JSON-RPC 2.0 error object carried by an
// ErrorResponse's "error" field.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// RawMessage is the wire-shape superset of all four envelope kinds, used
// only as the landing spot for an inbound frame before classification picks
// one of Request/Notification/Response/ErrorResponse. Consumers never hold
// onto a RawMessage past the classification step.
type RawMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Kind classifies a RawMessage by field presence, in the order fixed by the
// decode design: error present wins, then result, then method+id, then
// method alone. Any other combination is invalid.
type Kind int

const (
	KindInvalid Kind = iota
	KindErrorResponse
	KindResponse
	KindRequest
	KindNotification
)

// Classify implements the envelope dispatch order from §4.2:
//  1. error present -> error response
//  2. result present -> successful response
//  3. method + id present -> request
//  4. method present, no id -> notification
//  5. otherwise -> invalid
func (m *RawMessage) Classify() Kind {
	switch {
	case m.Error != nil:
		return KindErrorResponse
	case m.Result != nil:
		return KindResponse
	case m.Method != "" && m.ID != nil:
		return KindRequest
	case m.Method != "" && m.ID == nil:
		return KindNotification
	default:
		return KindInvalid
	}
}

// Request is a JSON-RPC request: it carries both an id and a method and
// expects a response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Method  Method          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Notification is fire-and-forget: it carries a method but no id.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  Method          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a successful reply, correlated to its request by ID.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Result  json.RawMessage `json:"result"`
}

// ErrorResponse is a failed reply, correlated to its request by ID.
type ErrorResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      RequestID `json:"id"`
	Error   Error     `json:"error"`
}

// NewRequestEnvelope builds a Request envelope with a fresh or user-supplied
// id. Marshaling failures on an already-validated params value should not
// happen in practice; NewEncodeError exists for that defensive case.
func NewRequestEnvelope(id RequestID, method Method, params interface{}) (*Request, error) {
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	return &Request{JSONRPC: Version, ID: id, Method: method, Params: raw}, nil
}

// NewNotificationEnvelope builds a Notification envelope. Notifications
// never carry an id.
func NewNotificationEnvelope(method Method, params interface{}) (*Notification, error) {
	raw, err := marshalParams(params)
	if err != nil {
		return nil, err
	}
	return &Notification{JSONRPC: Version, Method: method, Params: raw}, nil
}

// NewResponseEnvelope builds a successful Response envelope.
func NewResponseEnvelope(id RequestID, result interface{}) (*Response, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, mcperror.NewEncodeError(err, map[string]interface{}{"field": "result"})
	}
	return &Response{JSONRPC: Version, ID: id, Result: raw}, nil
}

// NewErrorResponseEnvelope builds an ErrorResponse envelope.
func NewErrorResponseEnvelope(id RequestID, wireError Error) *ErrorResponse {
	return &ErrorResponse{JSONRPC: Version, ID: id, Error: wireError}
}

func marshalParams(params interface{}) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, mcperror.NewEncodeError(err, map[string]interface{}{"field": "params"})
	}
	return raw, nil
}
