// file: internal/codec/envelope.go
package codec

import (
	"encoding/json"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcperror"
)

// DecodedRequest is a fully classified and dispatched inbound request: the
// JSON-RPC envelope fields plus the typed mcptype value Params decoded into.
type DecodedRequest struct {
	ID     jsonrpc.RequestID
	Method jsonrpc.Method
	Params interface{}
}

// DecodedNotification is the notification analogue of DecodedRequest.
type DecodedNotification struct {
	Method jsonrpc.Method
	Params interface{}
}

// DecodedResponse is a successful reply with its result already dispatched
// into a concrete mcptype result value.
type DecodedResponse struct {
	ID     jsonrpc.RequestID
	Result interface{}
}

// DecodedErrorResponse is a failed reply surfaced as an *mcperror.McpError.
type DecodedErrorResponse struct {
	ID  jsonrpc.RequestID
	Err *mcperror.McpError
}

// Decode runs the full L2 pipeline over one raw inbound frame: structural
// validation, envelope classification (§4.2 step 1), and method/shape-based
// dispatch into a typed value. dir selects which side's request/notification
// method table applies when a method name is ambiguous (e.g. "ping").
//
// The returned value is one of *DecodedRequest, *DecodedNotification,
// *DecodedResponse, or *DecodedErrorResponse.
func Decode(raw []byte, dir Direction) (interface{}, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var envelope jsonrpc.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, mcperror.NewDecodeError(err, map[string]interface{}{"stage": "envelope"})
	}

	switch envelope.Classify() {
	case jsonrpc.KindErrorResponse:
		var id jsonrpc.RequestID
		if err := json.Unmarshal(envelope.ID, &id); err != nil {
			return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "id"})
		}
		return &DecodedErrorResponse{
			ID:  id,
			Err: mcperror.NewProtocolError(envelope.Error.Code, envelope.Error.Message, envelope.Error.Data),
		}, nil

	case jsonrpc.KindResponse:
		var id jsonrpc.RequestID
		if err := json.Unmarshal(envelope.ID, &id); err != nil {
			return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "id"})
		}
		result, err := DecodeResult(envelope.Result)
		if err != nil {
			return nil, err
		}
		return &DecodedResponse{ID: id, Result: result}, nil

	case jsonrpc.KindRequest:
		var id jsonrpc.RequestID
		if err := json.Unmarshal(envelope.ID, &id); err != nil {
			return nil, mcperror.NewDecodeError(err, map[string]interface{}{"field": "id"})
		}
		params, err := DecodeRequestParams(dir, envelope.Method, envelope.Params)
		if err != nil {
			return nil, err
		}
		return &DecodedRequest{ID: id, Method: jsonrpc.NewMethod(envelope.Method), Params: params}, nil

	case jsonrpc.KindNotification:
		params, err := DecodeNotificationParams(dir, envelope.Method, envelope.Params)
		if err != nil {
			return nil, err
		}
		return &DecodedNotification{Method: jsonrpc.NewMethod(envelope.Method), Params: params}, nil

	default:
		return nil, mcperror.NewDecodeError(nil, map[string]interface{}{
			"issue": "message matches no known envelope kind",
		})
	}
}

// EncodeRequest marshals a method/params pair into a wire-ready Request frame.
func EncodeRequest(id jsonrpc.RequestID, method jsonrpc.Method, params interface{}) ([]byte, error) {
	env, err := jsonrpc.NewRequestEnvelope(id, method, params)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, mcperror.NewEncodeError(err, map[string]interface{}{"stage": "request"})
	}
	return raw, nil
}

// EncodeNotification marshals a method/params pair into a wire-ready Notification frame.
func EncodeNotification(method jsonrpc.Method, params interface{}) ([]byte, error) {
	env, err := jsonrpc.NewNotificationEnvelope(method, params)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, mcperror.NewEncodeError(err, map[string]interface{}{"stage": "notification"})
	}
	return raw, nil
}

// EncodeResponse marshals a result value into a wire-ready Response frame.
func EncodeResponse(id jsonrpc.RequestID, result interface{}) ([]byte, error) {
	env, err := jsonrpc.NewResponseEnvelope(id, result)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, mcperror.NewEncodeError(err, map[string]interface{}{"stage": "response"})
	}
	return raw, nil
}

// EncodeErrorResponse converts err into wire fields via mcperror.ErrorToWire
// and marshals a wire-ready ErrorResponse frame.
func EncodeErrorResponse(id jsonrpc.RequestID, err error) ([]byte, error) {
	code, message, data := mcperror.ErrorToWire(err)
	var rawData json.RawMessage
	if data != nil {
		marshaled, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			return nil, mcperror.NewEncodeError(marshalErr, map[string]interface{}{"stage": "error-data"})
		}
		rawData = marshaled
	}
	env := jsonrpc.NewErrorResponseEnvelope(id, jsonrpc.Error{Code: code, Message: message, Data: rawData})
	raw, marshalErr := json.Marshal(env)
	if marshalErr != nil {
		return nil, mcperror.NewEncodeError(marshalErr, map[string]interface{}{"stage": "error-response"})
	}
	return raw, nil
}
