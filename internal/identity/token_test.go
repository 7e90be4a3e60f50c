package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "clubhub/pkg/domain-errors"
)

var tokenService = NewTokenService("test-signing-key", "test-issuer")

var testIdentity = &Identity{
	ID:            "u1",
	Email:         "u1@example.com",
	EmailVerified: true,
}

func Test_Issue(t *testing.T) {
	token, err := tokenService.Issue(testIdentity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.ID, claims.UserID)
	assert.Equal(t, testIdentity.Email, claims.Email)
	assert.True(t, claims.EmailVerified)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := tokenService.ValidateToken("invalid-token-string")
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	token, err := tokenService.Issue(testIdentity, -time.Hour)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "token has expired"))
}

func Test_ValidateToken_WrongKey(t *testing.T) {
	other := NewTokenService("another-key", "test-issuer")
	token, err := other.Issue(testIdentity, time.Hour)
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(token)
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
}
