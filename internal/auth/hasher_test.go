package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, bcrypt.MinCost)

	hash, err := h.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, h.ComparePassword(hash, "s3cret"))
	assert.False(t, h.ComparePassword(hash, "wrong"))
}

func TestTokenHashRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, bcrypt.MinCost)

	hash, err := h.HashToken("some.signed.token")
	require.NoError(t, err)

	assert.True(t, h.CompareToken(hash, "some.signed.token"))
	assert.False(t, h.CompareToken(hash, "another.signed.token"))
}

func TestLongTokensDifferingPastBcryptWindow(t *testing.T) {
	// bcrypt only reads 72 bytes, so without the SHA-256 pre-digest these two
	// tokens would collide
	h := NewHasher(bcrypt.MinCost, bcrypt.MinCost)
	prefix := strings.Repeat("a", 100)

	hash, err := h.HashToken(prefix + "x")
	require.NoError(t, err)

	assert.True(t, h.CompareToken(hash, prefix+"x"))
	assert.False(t, h.CompareToken(hash, prefix+"y"))
}

func TestOutOfRangeCostFallsBackToDefault(t *testing.T) {
	h := NewHasher(99, -1)

	hash, err := h.HashPassword("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
