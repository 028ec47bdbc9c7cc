// file: internal/transport/in_memory_transport.go
package transport

import (
	"context"
)

// InMemoryTransport implements Transport over in-memory channels. It exists
// to let the codec and builder test suites exercise a full
// encode→frame→decode round trip through the real Transport contract
// instead of calling codec.Decode directly on encoder output.
type InMemoryTransport struct {
	handlerChain

	incoming chan []byte
	outgoing chan []byte
}

// InMemoryTransportPair is two InMemoryTransport instances wired so that
// messages sent on one arrive on the other.
type InMemoryTransportPair struct {
	Client *InMemoryTransport
	Server *InMemoryTransport
}

// NewInMemoryTransportPair creates a connected pair of InMemoryTransport
// instances: messages sent to Client arrive on Server, and vice versa.
// Neither side is Started by this call.
func NewInMemoryTransportPair() *InMemoryTransportPair {
	clientToServer := make(chan []byte, 100)
	serverToClient := make(chan []byte, 100)

	client := &InMemoryTransport{incoming: serverToClient, outgoing: clientToServer}
	server := &InMemoryTransport{incoming: clientToServer, outgoing: serverToClient}

	return &InMemoryTransportPair{Client: client, Server: server}
}

// Start launches the background loop that delivers messages arriving on the
// incoming channel to registered message handlers, validating each first.
func (t *InMemoryTransport) Start(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				t.Close()
				return
			case message, ok := <-t.incoming:
				if !ok {
					t.Close()
					return
				}
				if err := ValidateMessage(message); err != nil {
					t.dispatchError(err)
					continue
				}
				t.dispatchMessage(message)
			}
		}
	}()
	return nil
}

// Send validates message, stamps opts onto it, and delivers it to the paired
// transport's incoming channel.
func (t *InMemoryTransport) Send(ctx context.Context, message []byte, opts *SendOptions) error {
	message, err := stampSendOptions(message, opts)
	if err != nil {
		return NewError(ErrGeneric, "failed to stamp send options onto message", err)
	}
	if err := ValidateMessage(message); err != nil {
		return err
	}
	if len(message) > MaxMessageSize {
		return NewMessageSizeError(len(message), MaxMessageSize, message[:min(len(message), 100)])
	}

	select {
	case <-ctx.Done():
		return NewTimeoutError("send", ctx.Err())
	case t.outgoing <- message:
		return nil
	}
}

// Close fires the close handler chain exactly once. It keeps no closed
// state, so Send still delivers after Close. The underlying channels are
// left open: the paired transport may
// still be draining them, and closing a channel only one side owns would
// risk a send-on-closed-channel panic from the peer.
func (t *InMemoryTransport) Close() error {
	t.dispatchClose()
	return nil
}
