package codec

// file: internal/codec/content_test.go

import (
	"testing"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallToolResult_EncodeDecodeRoundTrip(t *testing.T) {
	id := jsonrpc.NewNumberID(1)
	result := mcptype.CallToolResult{
		Content: []mcptype.Content{mcptype.TextContent{Text: "ok"}},
	}

	wire, err := EncodeResponse(id, result)
	require.NoError(t, err)
	assert.Contains(t, string(wire), `"type":"text"`)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	resp, ok := decoded.(*DecodedResponse)
	require.True(t, ok)
	got, ok := resp.Result.(mcptype.CallToolResult)
	require.True(t, ok)
	require.Len(t, got.Content, 1)
	text, ok := got.Content[0].(mcptype.TextContent)
	require.True(t, ok)
	assert.Equal(t, "ok", text.Text)
}

func TestCompleteRequest_EncodeDecodeRoundTrip(t *testing.T) {
	id := jsonrpc.NewNumberID(2)
	req := mcptype.CompleteRequest{
		Ref:      mcptype.PromptReference{Name: "greeting"},
		Argument: mcptype.CompletionArgument{Name: "style", Value: "for"},
	}

	wire, err := EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodCompletionComplete), req)
	require.NoError(t, err)
	assert.Contains(t, string(wire), `"type":"ref/prompt"`)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	got, ok := decoded.(*DecodedRequest)
	require.True(t, ok)
	params, ok := got.Params.(mcptype.CompleteRequest)
	require.True(t, ok)
	ref, ok := params.Ref.(mcptype.PromptReference)
	require.True(t, ok)
	assert.Equal(t, "greeting", ref.Name)
	assert.Equal(t, "style", params.Argument.Name)
}

func TestCompleteRequest_ResourceReferenceRoundTrip(t *testing.T) {
	id := jsonrpc.NewNumberID(3)
	req := mcptype.CompleteRequest{
		Ref:      mcptype.ResourceReference{URI: "file:///a.txt"},
		Argument: mcptype.CompletionArgument{Name: "path", Value: "/a"},
	}

	wire, err := EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodCompletionComplete), req)
	require.NoError(t, err)

	decoded, err := Decode(wire, DirectionServerInbound)
	require.NoError(t, err)

	got, ok := decoded.(*DecodedRequest)
	require.True(t, ok)
	params, ok := got.Params.(mcptype.CompleteRequest)
	require.True(t, ok)
	ref, ok := params.Ref.(mcptype.ResourceReference)
	require.True(t, ok)
	assert.Equal(t, "file:///a.txt", ref.URI)
}
