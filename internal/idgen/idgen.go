// Package idgen generates collision-resistant string identifiers.
//
// The builder path normally lets the jsonrpc package allocate a plain
// monotonic numeric RequestID (jsonrpc.NextRequestID). This package offers
// an alternative for callers that want a sortable, non-numeric id instead —
// useful when a caller correlates requests against an external log or
// store keyed by string id.
package idgen

// file: internal/idgen/idgen.go

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcpcore/mcp/internal/jsonrpc"
	"github.com/oklog/ulid"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) // #nosec G404 -- ids need uniqueness, not cryptographic secrecy.
)

// NewULID returns a new lexically sortable ULID string, safe to call
// concurrently from any number of goroutines.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewRequestID returns a jsonrpc.RequestID carrying a freshly generated
// ULID, for callers that want a sortable string id instead of the package's
// default monotonic integer allocation.
func NewRequestID() jsonrpc.RequestID {
	id, err := jsonrpc.NewStringID(NewULID())
	if err != nil {
		// NewULID never returns an empty string, so NewStringID never
		// rejects it; a panic here would indicate a broken ulid encoding.
		panic(err)
	}
	return id
}

// NewProgressToken returns a jsonrpc.RequestID (the type mcptype.ProgressToken
// aliases) carrying a fresh random UUID, for a caller issuing a request with
// a _meta.progressToken that correlates a later stream of progress
// notifications back to it. A UUID suits this better than a ULID: progress
// tokens are never sorted, only compared for equality.
func NewProgressToken() jsonrpc.RequestID {
	id, err := jsonrpc.NewStringID(uuid.NewString())
	if err != nil {
		panic(err)
	}
	return id
}
