package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("s3cret", "admin@bikeshop.local", "admin", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken("s3cret", token)

	require.NoError(t, err)
	assert.Equal(t, "admin@bikeshop.local", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func Test_ValidateToken_Rejects(t *testing.T) {
	valid, _, err := GenerateToken("s3cret", "admin@bikeshop.local", "admin", time.Hour)
	require.NoError(t, err)
	expired, _, err := GenerateToken("s3cret", "admin@bikeshop.local", "admin", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", valid},
		{"expired", "s3cret", expired},
		{"garbage", "s3cret", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.secret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
