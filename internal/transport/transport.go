// Package transport defines the callback-based contract the message core
// uses to send and receive framed JSON-RPC messages, plus a newline-delimited
// JSON stream implementation of it. The core never blocks on I/O directly; it
// starts a transport, registers handlers, and sends frames through this
// narrow interface, leaving connection lifecycle and framing to the
// implementation.
// file: internal/transport/transport.go.
package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/mcpcore/mcp/internal/logging"
	"github.com/mcpcore/mcp/internal/rawjson"
)

// MaxMessageSize defines the maximum allowed size for a single JSON-RPC message in bytes (1MB).
// This helps prevent memory exhaustion from excessively large messages.
const MaxMessageSize = 1024 * 1024 // 1MB.

var (
	_ Transport = (*StreamTransport)(nil)
	_ Transport = (*InMemoryTransport)(nil)
)

// SendOptions carries the per-message metadata the transport contract allows
// alongside a frame: the request this message relates to, a resumption token
// to present on reconnect, and a callback the transport may invoke whenever
// it rotates its own resumption token.
type SendOptions struct {
	RelatedRequestID  *jsonrpc.RequestID
	ResumptionToken   string
	OnResumptionToken func(token string)
}

// MessageHandler is invoked once per inbound decoded message, in the order
// its OnMessage registration chained after any handlers already registered.
type MessageHandler func(message []byte)

// CloseHandler observes transport shutdown. It fires at most once per
// transport, regardless of how many goroutines race to close it.
type CloseHandler func()

// ErrorHandler observes asynchronous transport errors. Errors never
// implicitly close the transport.
type ErrorHandler func(err error)

// Transport is the narrow, callback-based interface the core uses to drive
// a connection: start it, send framed messages with optional correlation
// metadata, close it, and observe inbound messages, closure, and errors.
// Implementations must be safe for concurrent use.
type Transport interface {
	// Start initiates the underlying connection and begins delivering
	// inbound messages to registered handlers. It may suspend.
	Start(ctx context.Context) error

	// Send transmits one encoded JSON-RPC message, optionally carrying
	// correlation metadata via opts. It may suspend.
	Send(ctx context.Context, message []byte, opts *SendOptions) error

	// Close gracefully terminates the transport. The close callback chain
	// fires exactly once, no matter how many times Close is called or from
	// how many goroutines.
	Close() error

	// OnMessage registers handler to receive every future inbound message.
	// A handler registered before Start is called sees every message the
	// transport ever produces; one registered later only sees messages
	// produced after registration, and runs after handlers already chained.
	OnMessage(handler MessageHandler)

	// OnClose registers an observer of the transport's single close event.
	OnClose(handler CloseHandler)

	// OnError registers an observer of asynchronous transport errors.
	OnError(handler ErrorHandler)
}

// handlerChain is the shared bookkeeping behind OnMessage/OnClose/OnError
// and the at-most-once close guarantee, reused by every Transport
// implementation in this package.
type handlerChain struct {
	mu              sync.Mutex
	messageHandlers []MessageHandler
	errorHandlers   []ErrorHandler
	closeHandlers   []CloseHandler
	closeOnce       sync.Once
}

// OnMessage implements Transport.OnMessage, promoted to every type that
// embeds handlerChain.
func (h *handlerChain) OnMessage(handler MessageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messageHandlers = append(h.messageHandlers, handler)
}

// OnError implements Transport.OnError, promoted to every type that embeds
// handlerChain.
func (h *handlerChain) OnError(handler ErrorHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errorHandlers = append(h.errorHandlers, handler)
}

// OnClose implements Transport.OnClose, promoted to every type that embeds
// handlerChain.
func (h *handlerChain) OnClose(handler CloseHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closeHandlers = append(h.closeHandlers, handler)
}

func (h *handlerChain) dispatchMessage(message []byte) {
	h.mu.Lock()
	handlers := append([]MessageHandler(nil), h.messageHandlers...)
	h.mu.Unlock()
	for _, handler := range handlers {
		handler(message)
	}
}

func (h *handlerChain) dispatchError(err error) {
	h.mu.Lock()
	handlers := append([]ErrorHandler(nil), h.errorHandlers...)
	h.mu.Unlock()
	for _, handler := range handlers {
		handler(err)
	}
}

// dispatchClose runs the close chain at most once and reports whether this
// call was the one that fired it.
func (h *handlerChain) dispatchClose() (fired bool) {
	h.closeOnce.Do(func() {
		fired = true
		h.mu.Lock()
		handlers := append([]CloseHandler(nil), h.closeHandlers...)
		h.mu.Unlock()
		for _, handler := range handlers {
			handler()
		}
	})
	return fired
}

// calculatePreview generates a short, safe preview of byte data for logging.
func calculatePreview(data []byte) string {
	const maxPreviewLen = 100
	n := min(len(data), maxPreviewLen)
	previewBytes := bytes.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return '.'
		}
		return r
	}, data[:n])
	if len(data) > maxPreviewLen {
		return string(previewBytes) + "..."
	}
	return string(previewBytes)
}

// ValidateMessage performs basic validation on a JSON-RPC message's bytes.
// It checks for valid JSON syntax, the `jsonrpc` version, the `method` name,
// the shape of an `error` object, and which of `id`, `result` and `error` are
// present, enforcing structural rules like mutual exclusivity of `result` and
// `error`. It does not look at `params` or at the type of `id`.
// This is a framing-level check; codec.Validate runs the fuller structural
// pass before dispatch.
func ValidateMessage(message []byte) error {
	var msg map[string]interface{}
	if err := json.Unmarshal(message, &msg); err != nil {
		return NewParseError(message, err)
	}

	version, ok := msg["jsonrpc"]
	if !ok {
		return NewError(ErrInvalidMessage, "missing 'jsonrpc' field", nil).
			WithContext("messagePreview", calculatePreview(message))
	}
	if version != "2.0" {
		return NewError(ErrInvalidMessage, "unsupported JSON-RPC version", nil).
			WithContext("version", version).
			WithContext("messagePreview", calculatePreview(message))
	}

	hasMethod := false
	if method, exists := msg["method"]; exists {
		hasMethod = true
		methodStr, ok := method.(string)
		if !ok || methodStr == "" {
			return NewError(ErrInvalidMessage, "method must be a non-empty string", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
		if len(methodStr) >= 4 && methodStr[:4] == "rpc." {
			return NewError(ErrInvalidMessage, "method names starting with 'rpc.' are reserved", nil).
				WithContext("method", methodStr).
				WithContext("messagePreview", calculatePreview(message))
		}
	}

	_, hasID := msg["id"]
	_, hasResult := msg["result"]
	errorObj, hasError := msg["error"]

	if hasError {
		errorMap, ok := errorObj.(map[string]interface{})
		if !ok {
			return NewError(ErrInvalidMessage, "JSON-RPC error field must be an object", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
		if _, ok := errorMap["code"]; !ok {
			return NewError(ErrInvalidMessage, "JSON-RPC error object must contain 'code' and 'message'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
		if _, ok := errorMap["message"]; !ok {
			return NewError(ErrInvalidMessage, "JSON-RPC error object must contain 'code' and 'message'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
	}

	switch {
	case hasMethod:
		if hasResult || hasError {
			return NewError(ErrInvalidMessage, "request/notification cannot contain 'result' or 'error'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
	default:
		if !hasID && !hasError {
			return NewError(ErrInvalidMessage, "response message must contain 'id'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
		if !hasResult && !hasError {
			return NewError(ErrInvalidMessage, "response message must contain 'result' or 'error'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
		if hasResult && hasError {
			return NewError(ErrInvalidMessage, "response message cannot contain both 'result' and 'error'", nil).
				WithContext("messagePreview", calculatePreview(message))
		}
	}

	return nil
}

// stampSendOptions patches opts' correlation metadata onto an already-encoded
// frame via rawjson, instead of a full decode/re-encode round trip.
func stampSendOptions(message []byte, opts *SendOptions) ([]byte, error) {
	if opts == nil {
		return message, nil
	}
	meta := make(map[string]interface{}, 2)
	if opts.RelatedRequestID != nil {
		meta["relatedRequestId"] = opts.RelatedRequestID.String()
	}
	if opts.ResumptionToken != "" {
		meta["resumptionToken"] = opts.ResumptionToken
	}
	return rawjson.SetMeta(message, meta)
}

// StreamTransport implements Transport over a newline-delimited JSON stream,
// typically stdio, a pipe, or a socket. It reads complete JSON objects
// separated by newline characters and writes them the same way.
type StreamTransport struct {
	handlerChain

	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
	logger logging.Logger

	writeLock sync.Mutex
	closed    bool
	closeLock sync.RWMutex

	resumptionTok string
}

// NewStreamTransport creates a transport that reads/writes NDJSON messages
// from the provided reader and writer, using closer to shut down the
// underlying stream. It requires a logger for internal operations.
func NewStreamTransport(reader io.Reader, writer io.Writer, closer io.Closer, logger logging.Logger) *StreamTransport {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	return &StreamTransport{
		reader:        bufio.NewReader(reader),
		writer:        writer,
		closer:        closer,
		logger:        logger.WithField("component", "stream_transport"),
		resumptionTok: uuid.NewString(),
	}
}

// ResumptionToken identifies this transport's logical stream, so a client
// that reconnects after a dropped NDJSON stream can present it back to the
// server and ask to resume from its last acknowledged message instead of
// restarting the session.
func (t *StreamTransport) ResumptionToken() string {
	return t.resumptionTok
}

// Start launches the background read loop that feeds OnMessage handlers.
// It returns once the loop goroutine is running; the loop itself runs until
// the stream ends or Close is called.
func (t *StreamTransport) Start(ctx context.Context) error {
	go t.readLoop(ctx)
	return nil
}

func (t *StreamTransport) readLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			t.Close()
			return
		default:
		}

		line, err := t.reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				t.dispatchError(NewError(ErrTransportClosed, "connection closed by peer", io.EOF))
			} else {
				t.dispatchError(NewError(ErrGeneric, "failed to read message line", err))
			}
			t.Close()
			return
		}

		message := bytes.TrimRight(line, "\r\n")
		if len(message) == 0 {
			continue
		}
		if len(message) > MaxMessageSize {
			fragment := message[:min(len(message), 100)]
			t.dispatchError(NewMessageSizeError(len(message), MaxMessageSize, fragment))
			continue
		}

		t.logger.Debug("Received raw message line.", "size", len(message), "contentPreview", calculatePreview(message))

		if err := ValidateMessage(message); err != nil {
			t.logger.Warn("Invalid message received.", "validationError", err, "rawMessage", string(message))
			t.dispatchError(err)
			continue
		}

		t.dispatchMessage(message)
	}
}

// Send implements Transport.Send for NDJSON: it stamps opts onto the frame,
// validates it, appends a newline, and writes it atomically.
func (t *StreamTransport) Send(ctx context.Context, message []byte, opts *SendOptions) error {
	t.closeLock.RLock()
	if t.closed {
		t.closeLock.RUnlock()
		return NewClosedError("send")
	}
	t.closeLock.RUnlock()

	message, err := stampSendOptions(message, opts)
	if err != nil {
		return NewError(ErrGeneric, "failed to stamp send options onto message", err)
	}

	if err := ValidateMessage(message); err != nil {
		t.logger.Error("Attempted to send invalid message.", "validationError", err, "messagePreview", calculatePreview(message))
		return err
	}
	if len(message) > MaxMessageSize {
		fragment := message[:min(len(message), 100)]
		return NewMessageSizeError(len(message), MaxMessageSize, fragment)
	}

	t.writeLock.Lock()
	defer t.writeLock.Unlock()

	resultCh := make(chan error, 1)
	go func() {
		buf := make([]byte, len(message)+1)
		copy(buf, message)
		buf[len(message)] = '\n'

		t.logger.Debug("Writing NDJSON message.", "size", len(buf), "contentPreview", calculatePreview(message))

		n, writeErr := t.writer.Write(buf)
		if writeErr == nil && n < len(buf) {
			writeErr = io.ErrShortWrite
		}
		resultCh <- writeErr
	}()

	select {
	case <-ctx.Done():
		t.logger.Warn("Context cancelled while sending message.", "error", ctx.Err())
		return NewTimeoutError("send", ctx.Err())
	case err := <-resultCh:
		if err != nil {
			t.logger.Error("Failed to send message.", "error", fmt.Sprintf("%+v", err))
			return NewError(ErrGeneric, "failed to write message", err)
		}
		if opts != nil && opts.OnResumptionToken != nil {
			opts.OnResumptionToken(t.resumptionTok)
		}
		return nil
	}
}

// Close implements Transport.Close. It marks the transport closed, closes
// the underlying stream, and fires the close handler chain exactly once.
func (t *StreamTransport) Close() error {
	t.closeLock.Lock()
	alreadyClosed := t.closed
	t.closed = true
	t.closeLock.Unlock()

	if !alreadyClosed {
		t.logger.Info("Closing stream transport.")
		if t.closer != nil {
			if err := t.closer.Close(); err != nil {
				t.logger.Error("Error closing underlying transport stream.", "error", err)
				t.dispatchClose()
				return NewError(ErrTransportClosed, "failed to close underlying transport stream", err)
			}
		}
	}

	t.dispatchClose()
	return nil
}
