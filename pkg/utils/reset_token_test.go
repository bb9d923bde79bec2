package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenRoundTrip(t *testing.T) {
	cfg := ResetTokenConfig{Secret: "test-secret", ExpiryMinutes: 30}
	userID := uuid.New().String()

	token, err := GenerateResetToken(cfg, userID, "ana@example.com")
	require.NoError(t, err)

	claims, err := ValidateResetToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestResetTokenWrongSecret(t *testing.T) {
	cfg := ResetTokenConfig{Secret: "test-secret", ExpiryMinutes: 30}

	token, err := GenerateResetToken(cfg, uuid.New().String(), "ana@example.com")
	require.NoError(t, err)

	_, err = ValidateResetToken(ResetTokenConfig{Secret: "other-secret", ExpiryMinutes: 30}, token)
	assert.Error(t, err)
}

func TestResetTokenExpired(t *testing.T) {
	cfg := ResetTokenConfig{Secret: "test-secret", ExpiryMinutes: -1}

	token, err := GenerateResetToken(cfg, uuid.New().String(), "ana@example.com")
	require.NoError(t, err)

	_, err = ValidateResetToken(cfg, token)
	assert.Error(t, err)
}

func TestResetTokenRequiresSecret(t *testing.T) {
	cfg := ResetTokenConfig{ExpiryMinutes: 30}

	_, err := GenerateResetToken(cfg, uuid.New().String(), "ana@example.com")
	assert.Error(t, err)

	_, err = ValidateResetToken(cfg, "whatever")
	assert.Error(t, err)
}
