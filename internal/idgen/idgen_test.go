package idgen

// file: internal/idgen/idgen_test.go

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID_IsUniqueAndSortable(t *testing.T) {
	first := NewULID()
	second := NewULID()
	assert.NotEqual(t, first, second)
	assert.Len(t, first, 26)
	assert.LessOrEqual(t, first, second, "ULIDs generated in order should sort lexically in order")
}

func TestNewRequestID_IsStringValued(t *testing.T) {
	id := NewRequestID()
	assert.True(t, id.IsString())
	s, ok := id.StringValue()
	assert.True(t, ok)
	assert.Len(t, s, 26)
}

func TestNewProgressToken_IsStringValued(t *testing.T) {
	a := NewProgressToken()
	b := NewProgressToken()
	assert.True(t, a.IsString())
	assert.False(t, a.Equal(b), "two freshly generated progress tokens must not collide")
}
