package jsonrpc

// file: internal/jsonrpc/method_test.go

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMethod_ClassifiesDefinedVsCustom(t *testing.T) {
	defined := NewMethod(MethodToolsCall)
	assert.True(t, defined.IsDefined())
	assert.Equal(t, MethodToolsCall, defined.String())

	custom := NewMethod("x-vendor/do-thing")
	assert.False(t, custom.IsDefined())
	assert.Equal(t, "x-vendor/do-thing", custom.String())
}

func TestMethod_JSONRoundTrip(t *testing.T) {
	for _, wire := range []string{MethodInitialize, "some/custom-method"} {
		m := NewMethod(wire)
		raw, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, `"`+wire+`"`, string(raw))

		var decoded Method
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, wire, decoded.String())
		assert.Equal(t, m.IsDefined(), decoded.IsDefined())
	}
}
