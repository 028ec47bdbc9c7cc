package rawjson

// file: internal/rawjson/rawjson_test.go

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	raw := []byte(`{"name":"echo","arguments":{}}`)
	assert.True(t, Has(raw, "name"))
	assert.False(t, Has(raw, "missing"))
}

func TestHasAll(t *testing.T) {
	raw := []byte(`{"content":[],"isError":false}`)
	assert.True(t, HasAll(raw, "content", "isError"))
	assert.False(t, HasAll(raw, "content", "structuredContent"))
}

func TestString(t *testing.T) {
	raw := []byte(`{"uri":"file:///tmp/a.txt"}`)
	assert.Equal(t, "file:///tmp/a.txt", String(raw, "uri"))
	assert.Equal(t, "", String(raw, "missing"))
}

func TestIsEmptyObject(t *testing.T) {
	cases := map[string]bool{
		`{}`:                     true,
		`null`:                   true,
		``:                       true,
		`{"_meta":{"a":1}}`:      true,
		`{"content":[]}`:         false,
		`{"_meta":{},"foo":"x"}`: false,
	}
	for raw, want := range cases {
		assert.Equal(t, want, IsEmptyObject([]byte(raw)), "IsEmptyObject(%q)", raw)
	}
}

func TestSetMeta(t *testing.T) {
	raw := []byte(`{"name":"echo"}`)
	patched, err := SetMeta(raw, map[string]interface{}{"progressToken": "abc"})
	require.NoError(t, err)
	assert.True(t, Has(patched, "_meta.progressToken"))
	assert.Equal(t, "abc", String(patched, "_meta.progressToken"))
	assert.Equal(t, "echo", String(patched, "name"))
}

func TestSetMeta_EmptyMetaIsNoop(t *testing.T) {
	raw := []byte(`{"name":"echo"}`)
	patched, err := SetMeta(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, raw, patched)
}
