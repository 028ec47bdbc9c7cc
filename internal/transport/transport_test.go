package transport

// file: internal/transport/transport_test.go

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMessage_AcceptsWellFormedRequest(t *testing.T) {
	msg := []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`)
	assert.NoError(t, ValidateMessage(msg))
}

func TestValidateMessage_RejectsMissingJSONRPCField(t *testing.T) {
	err := ValidateMessage([]byte(`{"id":1,"method":"ping"}`))
	assert.Error(t, err)
}

func TestValidateMessage_RejectsReservedMethodPrefix(t *testing.T) {
	err := ValidateMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"rpc.internal"}`))
	assert.Error(t, err)
}

func TestValidateMessage_RejectsResultAndErrorTogether(t *testing.T) {
	err := ValidateMessage([]byte(`{"jsonrpc":"2.0","id":1,"result":{},"error":{"code":-1,"message":"x"}}`))
	assert.Error(t, err)
}

func TestInMemoryTransportPair_SendDeliversAcrossPair(t *testing.T) {
	pair := NewInMemoryTransportPair()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, pair.Server.Start(ctx))
	require.NoError(t, pair.Client.Start(ctx))

	received := make(chan []byte, 1)
	pair.Server.OnMessage(func(message []byte) { received <- message })

	msg := []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	require.NoError(t, pair.Client.Send(ctx, msg, nil))

	select {
	case got := <-received:
		assert.JSONEq(t, string(msg), string(got))
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

func TestInMemoryTransportPair_SendStampsSendOptionsIntoMeta(t *testing.T) {
	pair := NewInMemoryTransportPair()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, pair.Server.Start(ctx))
	require.NoError(t, pair.Client.Start(ctx))

	received := make(chan []byte, 1)
	pair.Server.OnMessage(func(message []byte) { received <- message })

	msg := []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	opts := &SendOptions{ResumptionToken: "resume-123"}
	require.NoError(t, pair.Client.Send(ctx, msg, opts))

	select {
	case got := <-received:
		assert.Contains(t, string(got), `"resumptionToken":"resume-123"`)
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

func TestInMemoryTransport_CloseIsIdempotentAndFiresOnce(t *testing.T) {
	pair := NewInMemoryTransportPair()

	fired := 0
	pair.Client.OnClose(func() { fired++ })

	require.NoError(t, pair.Client.Close())
	require.NoError(t, pair.Client.Close())
	assert.Equal(t, 1, fired)
}

func TestStreamTransport_SendWritesNewlineDelimitedFrame(t *testing.T) {
	serverRead, clientWrite := io.Pipe()
	clientRead, serverWrite := io.Pipe()

	client := NewStreamTransport(clientRead, clientWrite, clientWrite, nil)
	server := NewStreamTransport(serverRead, serverWrite, serverWrite, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Start(ctx))
	require.NoError(t, client.Start(ctx))

	received := make(chan []byte, 1)
	server.OnMessage(func(message []byte) { received <- message })

	msg := []byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	go func() {
		assert.NoError(t, client.Send(ctx, msg, nil))
	}()

	select {
	case got := <-received:
		assert.JSONEq(t, string(msg), string(got))
	case <-ctx.Done():
		t.Fatal("timed out waiting for message over the stream")
	}
}

func TestStreamTransport_CloseFiresHandlerExactlyOnce(t *testing.T) {
	r, w := io.Pipe()
	tr := NewStreamTransport(r, w, w, nil)

	fired := 0
	tr.OnClose(func() { fired++ })

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
	assert.Equal(t, 1, fired)
}
