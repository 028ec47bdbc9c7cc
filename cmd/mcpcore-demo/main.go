// Command mcpcore-demo builds a typed MCP request, encodes it to wire bytes,
// then decodes those bytes back through the codec's dispatch tables —
// a round trip exercising the builder, codec, and jsonrpc layers together.
package main

// file: cmd/mcpcore-demo/main.go

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mcpcore/mcp/internal/codec"
	"github.com/mcpcore/mcp/internal/idgen"
	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/mcptype"
	"github.com/mcpcore/mcp/pkg/mcp"
)

func main() {
	method := flag.String("method", "initialize", "which request to build: initialize, tools/call, or transport-demo")
	toolName := flag.String("tool", "echo", "tool name, used when -method=tools/call or transport-demo")
	flag.Parse()

	var (
		wire []byte
		err  error
		id   = idgen.NewRequestID()
	)

	switch *method {
	case "initialize":
		wire, err = buildInitialize(id)
	case "tools/call":
		wire, err = buildToolCall(id, *toolName)
	case "transport-demo":
		runTransportDemo(id, *toolName)
		return
	default:
		log.Fatalf("unknown -method %q: want initialize, tools/call, or transport-demo", *method)
	}
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	fmt.Printf("encoded request:\n%s\n\n", prettyJSON(wire))

	decoded, err := codec.Decode(wire, codec.DirectionServerInbound)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	switch d := decoded.(type) {
	case *codec.DecodedRequest:
		fmt.Printf("decoded as request: method=%s id=%s params=%+v\n", d.Method.String(), d.ID.String(), d.Params)
	default:
		fmt.Printf("decoded as %T: %+v\n", decoded, decoded)
	}
}

// runTransportDemo builds a tools/call request and sends it across an
// in-memory Transport pair (§4.4), showing the callback contract a real
// connection (stdio, socket) would drive in the same way.
func runTransportDemo(id jsonrpc.RequestID, toolName string) {
	wire, err := buildToolCall(id, toolName)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	pair := mcp.NewInMemoryTransportPair()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := pair.Server.Start(ctx); err != nil {
		log.Fatalf("start server transport: %v", err)
	}
	if err := pair.Client.Start(ctx); err != nil {
		log.Fatalf("start client transport: %v", err)
	}

	done := make(chan struct{})
	pair.Server.OnMessage(func(message []byte) {
		defer close(done)
		decoded, err := codec.Decode(message, codec.DirectionServerInbound)
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		d, ok := decoded.(*codec.DecodedRequest)
		if !ok {
			log.Fatalf("expected a decoded request, got %T", decoded)
		}
		fmt.Printf("server received: method=%s id=%s params=%+v\n", d.Method.String(), d.ID.String(), d.Params)
	})
	pair.Server.OnClose(func() {
		fmt.Println("server transport closed")
	})

	if err := pair.Client.Send(ctx, wire, nil); err != nil {
		log.Fatalf("send: %v", err)
	}

	select {
	case <-done:
	case <-ctx.Done():
		log.Fatal("timed out waiting for the server side to receive the message")
	}

	_ = pair.Client.Close()
	_ = pair.Server.Close()
}

func buildInitialize(id jsonrpc.RequestID) ([]byte, error) {
	req, err := mcp.NewInitializeRequestBuilder().
		WithProtocolVersion(mcp.LatestProtocolVersion()).
		WithClientInfo(mcptype.Implementation{Name: "mcpcore-demo", Version: "0.1.0"}).
		Build()
	if err != nil {
		return nil, err
	}
	return mcp.EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodInitialize), req)
}

func buildToolCall(id jsonrpc.RequestID, toolName string) ([]byte, error) {
	req, err := mcp.NewCallToolRequestBuilder().
		WithName(toolName).
		WithArgument("text", "hello from mcpcore-demo").
		Build()
	if err != nil {
		return nil, err
	}
	return mcp.EncodeRequest(id, jsonrpc.NewMethod(jsonrpc.MethodToolsCall), req)
}

func prettyJSON(raw []byte) string {
	var buf []byte
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(buf)
}
