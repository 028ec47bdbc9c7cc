package mcperror

// file: internal/mcperror/mcperror_test.go

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructionError(t *testing.T) {
	err := NewConstructionError("name is required", map[string]interface{}{"field": "name"})
	require.Error(t, err)
	assert.True(t, IsConstructionError(err))
	assert.Equal(t, CategoryConstruction, GetErrorCategory(err))
	assert.Equal(t, CodeInvalidParams, GetErrorCode(err))
	assert.Equal(t, "name", GetErrorProperties(err)["field"])
}

func TestNewDecodeError_WrapsCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewDecodeError(cause, map[string]interface{}{"offset": 12})
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
	assert.Equal(t, CategoryDecode, GetErrorCategory(err))
	assert.Equal(t, CodeInvalidRequest, GetErrorCode(err))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestNewDecodeError_NilCause(t *testing.T) {
	err := NewDecodeError(nil, map[string]interface{}{"field": "id"})
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestNewDispatchError(t *testing.T) {
	err := NewDispatchError("unknown content shape", map[string]interface{}{"type": "weird"})
	assert.True(t, IsDispatchError(err))
	assert.Equal(t, CategoryDispatch, GetErrorCategory(err))
}

func TestErrorToWire_RedactsSensitiveKeys(t *testing.T) {
	err := ErrorWithDetails(errors.New("boom"), CategoryConfig, CodeInvalidParams, map[string]interface{}{
		"token": "sk-abc123", "field": "server.name",
	})

	code, message, data := ErrorToWire(err)
	assert.Equal(t, CodeInvalidParams, code)
	assert.Equal(t, UserFacingMessage(CodeInvalidParams), message)
	assert.NotContains(t, data, "token")
	assert.Equal(t, "server.name", data["field"])
}

func TestErrorToWire_NilErrorReturnsZeroValue(t *testing.T) {
	code, message, data := ErrorToWire(nil)
	assert.Equal(t, 0, code)
	assert.Equal(t, "", message)
	assert.Nil(t, data)
}

func TestGetErrorCode_DefaultsToInternalErrorWhenAbsent(t *testing.T) {
	plain := errors.New("no category attached")
	assert.Equal(t, CodeInternalError, GetErrorCode(plain))
}

func TestMcpError_Error(t *testing.T) {
	e := NewProtocolError(CodeMethodNotFound, "method not found", nil)
	assert.Equal(t, "mcp error -32601: method not found", e.Error())
}
