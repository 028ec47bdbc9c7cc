package builder

// file: internal/builder/transport_test.go

import (
	"context"
	"testing"
	"time"

	"github.com/mcpcore/mcp/internal/codec"
	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuiltCallToolResult_SendOverInMemoryTransport builds a CallToolResult
// through CallToolResultBuilder, encodes it, and pushes it across the
// Transport contract's in-memory reference implementation, confirming the
// receiving side decodes exactly what the builder produced.
func TestBuiltCallToolResult_SendOverInMemoryTransport(t *testing.T) {
	text, err := NewTextContentBuilder().WithText("ok").Build()
	require.NoError(t, err)

	result, err := NewCallToolResultBuilder().
		WithContent(text).
		Build()
	require.NoError(t, err)

	id := jsonrpc.NewNumberID(1)
	wire, err := codec.EncodeResponse(id, result)
	require.NoError(t, err)

	pair := transport.NewInMemoryTransportPair()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, pair.Server.Start(ctx))
	require.NoError(t, pair.Client.Start(ctx))

	received := make(chan []byte, 1)
	pair.Server.OnMessage(func(message []byte) { received <- message })

	require.NoError(t, pair.Client.Send(ctx, wire, nil))

	select {
	case framed := <-received:
		decoded, err := codec.Decode(framed, codec.DirectionServerInbound)
		require.NoError(t, err)
		resp, ok := decoded.(*codec.DecodedResponse)
		require.True(t, ok)
		got, ok := resp.Result.(mcptype.CallToolResult)
		require.True(t, ok)
		require.Len(t, got.Content, 1)
		text, ok := got.Content[0].(mcptype.TextContent)
		require.True(t, ok)
		assert.Equal(t, "ok", text.Text)
	case <-ctx.Done():
		t.Fatal("timed out waiting for message to arrive over the transport")
	}
}
