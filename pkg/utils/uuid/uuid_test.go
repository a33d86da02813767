package uuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUUID4(t *testing.T) {
	id := GenUUID4()
	assert.Len(t, id, 32)
	assert.True(t, IsUUID4Hex(id))
	assert.NotEqual(t, id, GenUUID4())
}

func TestIsUUID4Hex(t *testing.T) {
	assert.False(t, IsUUID4Hex(""))
	assert.False(t, IsUUID4Hex("abc"))
	assert.False(t, IsUUID4Hex(strings.Repeat("z", 32)))
	assert.True(t, IsUUID4Hex(strings.Repeat("a", 32)))
}
