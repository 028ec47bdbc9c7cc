// file: internal/jsonrpc/requestid.go
package jsonrpc

import (
	"encoding/json"
	"strconv"
	"sync/atomic"

	"github.com/mcpcore/mcp/internal/mcperror"
)

// idKind discriminates the two admissible shapes of a RequestID.
type idKind uint8

const (
	idKindString idKind = iota
	idKindNumber
)

// RequestID is a discriminated value that is either a string or a signed
// 64-bit integer, matching the JSON-RPC 2.0 id primitive. The zero value is
// not a valid id; always construct through NewStringID, NewNumberID, or
// NextRequestID.
type RequestID struct {
	kind idKind
	str  string
	num  int64
}

// NewStringID builds a string-valued RequestID. The string must not be
// empty — an empty string is the one user-supplied id shape the type model
// forbids, since it cannot be distinguished from "no id" in some transports.
func NewStringID(id string) (RequestID, error) {
	if id == "" {
		return RequestID{}, mcperror.NewConstructionError(
			"request id: string id must not be empty",
			map[string]interface{}{"field": "id"},
		)
	}
	return RequestID{kind: idKindString, str: id}, nil
}

// NewNumberID builds an integer-valued RequestID directly. Most callers
// should prefer NextRequestID so that outbound integer ids stay monotonic.
func NewNumberID(id int64) RequestID {
	return RequestID{kind: idKindNumber, num: id}
}

// requestIDCounter is the process-wide monotonically increasing counter
// backing NextRequestID. It starts such that the first allocated id is 1.
var requestIDCounter int64

// NextRequestID allocates the next integer id from the process-wide
// counter. The counter is shared by every outbound request in the process
// and is advanced atomically, so it is safe to call concurrently from any
// number of goroutines building requests at once.
func NextRequestID() RequestID {
	n := atomic.AddInt64(&requestIDCounter, 1)
	return NewNumberID(n)
}

// IsString reports whether the id is string-valued.
func (id RequestID) IsString() bool { return id.kind == idKindString }

// IsNumber reports whether the id is number-valued.
func (id RequestID) IsNumber() bool { return id.kind == idKindNumber }

// StringValue returns the string value and true if the id is string-valued.
func (id RequestID) StringValue() (string, bool) {
	if id.kind != idKindString {
		return "", false
	}
	return id.str, true
}

// NumberValue returns the integer value and true if the id is number-valued.
func (id RequestID) NumberValue() (int64, bool) {
	if id.kind != idKindNumber {
		return 0, false
	}
	return id.num, true
}

// Equal reports whether two ids carry the same discriminant and value, per
// the correlation rule that a response's id must match its request's id
// exactly (value and discriminant).
func (id RequestID) Equal(other RequestID) bool {
	if id.kind != other.kind {
		return false
	}
	if id.kind == idKindString {
		return id.str == other.str
	}
	return id.num == other.num
}

// String renders the id for logging; it is not the wire representation.
func (id RequestID) String() string {
	if id.kind == idKindString {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

// MarshalJSON emits a quoted string or a bare integer literal depending on
// the id's discriminant.
func (id RequestID) MarshalJSON() ([]byte, error) {
	if id.kind == idKindString {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

// UnmarshalJSON decodes a quoted string as a string id and an integer
// literal as a number id; any other primitive (object, array, bool, float
// with a fractional part, null) fails decode, per §4.2's id dispatch rule.
func (id *RequestID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, constructErr := NewStringID(asString)
		if constructErr != nil {
			return constructErr
		}
		*id = parsed
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		n, convErr := asNumber.Int64()
		if convErr != nil {
			return mcperror.NewDecodeError(convErr, map[string]interface{}{
				"field": "id", "raw": string(data),
			})
		}
		*id = NewNumberID(n)
		return nil
	}

	return mcperror.NewDecodeError(nil, map[string]interface{}{
		"field": "id",
		"raw":   string(data),
		"issue": "id must be a JSON string or integer",
	})
}

