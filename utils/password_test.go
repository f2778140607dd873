package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("ride-safe")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "ride-safe")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "ride-fast")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_VerifyPassword_EmptyHash(t *testing.T) {
	ok, err := VerifyPassword("", "anything")

	assert.NoError(t, err)
	assert.False(t, ok)
}
