package envx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("GOARTICLE_TEST_STR", "value")
	assert.Equal(t, "value", Get("GOARTICLE_TEST_STR", "default"))
	assert.Equal(t, "default", Get("GOARTICLE_TEST_NOT_EXISTS", "default"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("GOARTICLE_TEST_INT", "12")
	t.Setenv("GOARTICLE_TEST_BAD_INT", "twelve")
	assert.Equal(t, 12, GetInt("GOARTICLE_TEST_INT", 3))
	assert.Equal(t, 3, GetInt("GOARTICLE_TEST_BAD_INT", 3))
	assert.Equal(t, 3, GetInt("GOARTICLE_TEST_NOT_EXISTS", 3))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("GOARTICLE_TEST_DURATION", "30m")
	assert.Equal(t, 30*time.Minute, GetDuration("GOARTICLE_TEST_DURATION", time.Hour))
	assert.Equal(t, time.Hour, GetDuration("GOARTICLE_TEST_NOT_EXISTS", time.Hour))
}
