package codec

// file: internal/codec/result_test.go

import (
	"encoding/json"
	"testing"

	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResult_ListTools(t *testing.T) {
	raw := json.RawMessage(`{"tools":[{"name":"echo","inputSchema":{"type":"object"}}]}`)
	result, err := DecodeResult(raw)
	require.NoError(t, err)

	listed, ok := result.(mcptype.ListToolsResult)
	require.True(t, ok)
	require.Len(t, listed.Tools, 1)
	assert.Equal(t, "echo", listed.Tools[0].Name)
}

func TestDecodeResult_CallToolResultWithTextContent(t *testing.T) {
	raw := json.RawMessage(`{"content":[{"type":"text","text":"hi"}],"isError":false}`)
	result, err := DecodeResult(raw)
	require.NoError(t, err)

	callResult, ok := result.(mcptype.CallToolResult)
	require.True(t, ok)
	require.Len(t, callResult.Content, 1)
	text, ok := callResult.Content[0].(mcptype.TextContent)
	require.True(t, ok)
	assert.Equal(t, "hi", text.Text)
}

func TestDecodeResult_EmptyObjectFallsBackToEmptyResult(t *testing.T) {
	result, err := DecodeResult(json.RawMessage(`{}`))
	require.NoError(t, err)
	_, ok := result.(mcptype.EmptyResult)
	assert.True(t, ok)
}

func TestDecodeResult_UnknownShapeIsDispatchError(t *testing.T) {
	_, err := DecodeResult(json.RawMessage(`{"somethingUnexpected":true}`))
	assert.Error(t, err)
}
