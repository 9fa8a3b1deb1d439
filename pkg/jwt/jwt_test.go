package jwt

import (
	"testing"
	"time"

	"medicor-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, Expiry: expiry})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateToken(userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a", time.Hour)
	verifier := newTestService("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken(uuid.New(), "bob@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService("test-secret", -time.Minute)

	token, _, err := svc.GenerateToken(uuid.New(), "carol@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	_, first, err := svc.GenerateToken(userID, "dave@example.com")
	require.NoError(t, err)
	_, second, err := svc.GenerateToken(userID, "dave@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
