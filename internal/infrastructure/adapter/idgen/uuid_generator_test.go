package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		assert.True(t, IsValid(id), "generated id %q should parse", id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-uuid"))
}
