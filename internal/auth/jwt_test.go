package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "pulse", "pulse")

	token, expiresAt, err := authenticator.GenerateSessionToken(time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := authenticator.ValidateSessionToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "pulse", claims["iss"])
}

func TestSessionTokenWrongSecret(t *testing.T) {
	issuer := NewJWTAuthenticator("real-secret", "pulse", "pulse")
	verifier := NewJWTAuthenticator("other-secret", "pulse", "pulse")

	token, _, err := issuer.GenerateSessionToken(time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "pulse", "pulse")

	token, _, err := authenticator.GenerateSessionToken(-time.Minute)
	require.NoError(t, err)

	_, err = authenticator.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "pulse", "pulse")

	_, err := authenticator.ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
