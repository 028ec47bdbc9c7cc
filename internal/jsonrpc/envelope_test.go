package jsonrpc

// file: internal/jsonrpc/envelope_test.go

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawMessage_Classify(t *testing.T) {
	cases := []struct {
		name string
		msg  RawMessage
		want Kind
	}{
		{"error wins", RawMessage{Error: &Error{Code: -32600, Message: "bad"}}, KindErrorResponse},
		{"result without error", RawMessage{Result: json.RawMessage(`{}`)}, KindResponse},
		{"method and id is a request", RawMessage{Method: "ping", ID: json.RawMessage(`1`)}, KindRequest},
		{"method without id is a notification", RawMessage{Method: "notifications/initialized"}, KindNotification},
		{"nothing set is invalid", RawMessage{}, KindInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.msg.Classify())
		})
	}
}

func TestNewRequestEnvelope(t *testing.T) {
	id := NewNumberID(1)
	req, err := NewRequestEnvelope(id, NewMethod(MethodPing), nil)
	require.NoError(t, err)
	assert.Equal(t, Version, req.JSONRPC)
	assert.True(t, req.ID.Equal(id))
	assert.Nil(t, req.Params)
}

func TestNewRequestEnvelope_MarshalsParams(t *testing.T) {
	req, err := NewRequestEnvelope(NewNumberID(1), NewMethod(MethodToolsCall),
		map[string]interface{}{"name": "echo"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Params, &decoded))
	assert.Equal(t, "echo", decoded["name"])
}

func TestNewErrorResponseEnvelope(t *testing.T) {
	id := NewNumberID(7)
	resp := NewErrorResponseEnvelope(id, Error{Code: -32601, Message: "not found"})
	assert.Equal(t, Version, resp.JSONRPC)
	assert.True(t, resp.ID.Equal(id))
	assert.Equal(t, -32601, resp.Error.Code)
}
