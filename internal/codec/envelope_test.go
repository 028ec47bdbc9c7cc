package codec

// file: internal/codec/envelope_test.go

import (
	"testing"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcperror"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRequest_RoundTrip(t *testing.T) {
	id := jsonrpc.NewNumberID(1)
	req := mcptype.CallToolRequest{Name: "echo", Arguments: map[string]interface{}{"text": "hi"}}

	wire, err := EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodToolsCall), req)
	require.NoError(t, err)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	got, ok := decoded.(*DecodedRequest)
	require.True(t, ok)
	assert.True(t, got.ID.Equal(id))
	assert.Equal(t, jsonrpc.MethodToolsCall, got.Method.String())

	params, ok := got.Params.(mcptype.CallToolRequest)
	require.True(t, ok)
	assert.Equal(t, "echo", params.Name)
	assert.Equal(t, "hi", params.Arguments["text"])
}

func TestEncodeDecodeNotification_RoundTrip(t *testing.T) {
	wire, err := EncodeNotification(jsonrpc.NewMethod(jsonrpc.MethodNotificationsInitialized), nil)
	require.NoError(t, err)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	got, ok := decoded.(*DecodedNotification)
	require.True(t, ok)
	assert.Equal(t, jsonrpc.MethodNotificationsInitialized, got.Method.String())
}

func TestEncodeDecodeErrorResponse_RoundTrip(t *testing.T) {
	id := jsonrpc.NewNumberID(2)
	cause := mcperror.NewDecodeError(nil, map[string]interface{}{"field": "method"})
	wire, err := EncodeErrorResponse(id, cause)
	require.NoError(t, err)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	got, ok := decoded.(*DecodedErrorResponse)
	require.True(t, ok)
	assert.True(t, got.ID.Equal(id))
	assert.NotZero(t, got.Err.Code)
}

func TestDecode_RejectsMalformedEnvelope(t *testing.T) {
	_, err := Decode([]byte(`{"jsonrpc":"1.0","method":"ping"}`), DirectionServerInbound)
	assert.Error(t, err)
}
