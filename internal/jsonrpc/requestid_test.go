package jsonrpc

// file: internal/jsonrpc/requestid_test.go

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringID_RejectsEmpty(t *testing.T) {
	_, err := NewStringID("")
	require.Error(t, err)
}

func TestNewStringID_RoundTripsJSON(t *testing.T) {
	id, err := NewStringID("abc-123")
	require.NoError(t, err)

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"abc-123"`, string(raw))

	var decoded RequestID
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.IsString())
	assert.True(t, decoded.Equal(id))
}

func TestNewNumberID_RoundTripsJSON(t *testing.T) {
	id := NewNumberID(42)

	raw, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))

	var decoded RequestID
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.IsNumber())
	n, ok := decoded.NumberValue()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func TestNextRequestID_IsMonotonic(t *testing.T) {
	first := NextRequestID()
	second := NextRequestID()

	firstN, _ := first.NumberValue()
	secondN, _ := second.NumberValue()
	assert.Less(t, firstN, secondN)
}

func TestRequestID_Equal_DistinguishesKind(t *testing.T) {
	strID, err := NewStringID("1")
	require.NoError(t, err)
	numID := NewNumberID(1)
	assert.False(t, strID.Equal(numID), "a string id and number id must never compare equal even with the same textual value")
}

func TestRequestID_UnmarshalJSON_RejectsInvalidShapes(t *testing.T) {
	cases := []string{"null", "true", "[]", "{}", "1.5"}
	for _, c := range cases {
		var id RequestID
		err := json.Unmarshal([]byte(c), &id)
		assert.Error(t, err, "expected %q to be rejected as a request id", c)
	}
}
