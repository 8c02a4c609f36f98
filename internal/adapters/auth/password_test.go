package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(10)

	hash, err := h.Hash("my-secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "my-secret-password", hash)

	require.NoError(t, h.Compare(hash, "my-secret-password"))
}

func TestBcryptHasher_Compare_wrongPassword(t *testing.T) {
	h := NewBcryptHasher(10)

	hash, err := h.Hash("correct")
	require.NoError(t, err)

	assert.Error(t, h.Compare(hash, "wrong"))
}
