package codec

// file: internal/codec/transport_test.go

import (
	"context"
	"testing"
	"time"

	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCallToolRequest_EncodeFrameDecodeOverInMemoryTransport exercises a full
// encode→frame→decode round trip through the real Transport contract: the
// client encodes a request and sends it over an InMemoryTransport, and the
// server side decodes whatever its OnMessage handler actually received.
func TestCallToolRequest_EncodeFrameDecodeOverInMemoryTransport(t *testing.T) {
	pair := transport.NewInMemoryTransportPair()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, pair.Server.Start(ctx))
	require.NoError(t, pair.Client.Start(ctx))

	received := make(chan []byte, 1)
	pair.Server.OnMessage(func(message []byte) {
		received <- message
	})

	id := jsonrpc.NewNumberID(7)
	req := mcptype.CallToolRequest{Name: "echo", Arguments: map[string]interface{}{"text": "hi"}}
	wire, err := EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodToolsCall), req)
	require.NoError(t, err)

	require.NoError(t, pair.Client.Send(ctx, wire, nil))

	select {
	case framed := <-received:
		decoded, err := Decode(framed, DirectionServerInbound)
		require.NoError(t, err)
		got, ok := decoded.(*DecodedRequest)
		require.True(t, ok)
		params, ok := got.Params.(mcptype.CallToolRequest)
		require.True(t, ok)
		assert.Equal(t, "echo", params.Name)
	case <-ctx.Done():
		t.Fatal("timed out waiting for message to arrive over the transport")
	}
}

// TestInMemoryTransport_CloseFiresHandlerExactlyOnce exercises the transport
// contract's at-most-once close guarantee under concurrent Close calls.
func TestInMemoryTransport_CloseFiresHandlerExactlyOnce(t *testing.T) {
	pair := transport.NewInMemoryTransportPair()

	var fired int
	pair.Client.OnClose(func() { fired++ })

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			_ = pair.Client.Close()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 1, fired)
}
