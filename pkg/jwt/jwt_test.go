package jwt

import (
	"testing"
	"time"

	"rhu-patient-portal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "juan@example.com", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "juan@example.com", claims.Email)
	assert.Equal(t, 1, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasDistinctTokenID(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	_, accessID, err := s.GenerateAccessToken(userID, "juan@example.com", 1)
	require.NoError(t, err)

	refresh, refreshID, err := s.GenerateRefreshToken(userID, "juan@example.com", 1)
	require.NoError(t, err)
	assert.NotEqual(t, accessID, refreshID)

	claims, err := s.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService()
	token, _, err := s.GenerateAccessToken(uuid.New(), "juan@example.com", 1)
	require.NoError(t, err)

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: time.Hour,
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: time.Hour,
	})

	token, _, err := s.GenerateAccessToken(uuid.New(), "juan@example.com", 1)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	s := newTestService()
	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}
