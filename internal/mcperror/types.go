// Package mcperror defines the error kinds, wire error codes, and error
// utilities shared by the codec, builders, and transport contract.
// file: internal/mcperror/types.go
package mcperror

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors marking the four kinds distinguished in the core's error
// handling design: construction (builder), encode, decode, and dispatch.
// errors.Is against these survives wrapping.
var (
	ErrConstruction = errors.New("construction error")
	ErrEncode       = errors.New("encode error")
	ErrDecode       = errors.New("decode error")
	ErrDispatch     = errors.New("dispatch error")
)

// ErrorWithDetails marks err with category/code and attaches each entry of
// details as structured context, in the teacher's detail-string style.
func ErrorWithDetails(err error, category string, code int, details map[string]interface{}) error {
	err = errors.WithDetail(err, fmt.Sprintf("category:%s", category))
	err = errors.WithDetail(err, fmt.Sprintf("code:%d", code))
	for key, value := range details {
		err = errors.WithDetail(err, fmt.Sprintf("%s:%v", key, value))
	}
	return err
}

// NewConstructionError reports a builder Build() call that failed because a
// required field was never set, or a set field violates a numeric/size
// invariant from the type model (e.g. priority out of [0,1]).
//
// The message names the offending field so the caller can act on it
// directly, per the builder discipline in the design.
func NewConstructionError(message string, details map[string]interface{}) error {
	err := errors.Newf("%s", message)
	err = errors.Mark(err, ErrConstruction)
	return ErrorWithDetails(err, CategoryConstruction, CodeInvalidParams, details)
}

// NewEncodeError reports a typed value that could not be serialized. In
// practice this should not happen for values produced by a builder; it
// exists for defense against a caller constructing a value outside the
// builder path.
func NewEncodeError(cause error, details map[string]interface{}) error {
	err := errors.Wrap(cause, "encode failed")
	err = errors.Mark(err, ErrEncode)
	return ErrorWithDetails(err, CategoryEncode, CodeInternalError, details)
}

// NewDecodeError reports inbound bytes or a JSON value that the codec could
// not turn into a typed value: invalid JSON, an envelope shape that matches
// none of the four families, or a polymorphic dispatch that exhausted its
// keyword table.
func NewDecodeError(cause error, details map[string]interface{}) error {
	var err error
	if cause != nil {
		err = errors.Wrap(cause, "decode failed")
	} else {
		err = errors.New("decode failed")
	}
	err = errors.Mark(err, ErrDecode)
	return ErrorWithDetails(err, CategoryDecode, CodeInvalidRequest, details)
}

// NewDispatchError reports a result or content shape that matched none of
// the known dispatch tables. Unknown request/notification *methods* are not
// supposed to reach here — they fall back to CustomRequest/CustomNotification
// (§4.2); this is for result and content shapes, which have no custom
// fallback and must fail hard.
func NewDispatchError(message string, details map[string]interface{}) error {
	err := errors.Newf("%s", message)
	err = errors.Mark(err, ErrDispatch)
	return ErrorWithDetails(err, CategoryDispatch, CodeInvalidRequest, details)
}

// McpError is the local representation of a peer's JSON-RPC ErrorResponse,
// delivered to the session layer that correlated the response's id with its
// originating request. Data is a json.RawMessage (not map[string]any) so
// that arbitrary peer-supplied error data round-trips without loss —
// resolving the source's JsonObject/JsonElement split toward the more
// general shape.
type McpError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *McpError) Error() string {
	return fmt.Sprintf("mcp error %d: %s", e.Code, e.Message)
}

// NewProtocolError wraps a peer's error object in an *McpError for delivery
// up the stack.
func NewProtocolError(code int, message string, data json.RawMessage) *McpError {
	return &McpError{Code: code, Message: message, Data: data}
}
