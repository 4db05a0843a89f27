package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSigningKey("unit-test-secret")

	token, expiresAt, err := GenerateToken("agent-1", "mr01", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", claims.AgentID)
	assert.Equal(t, "mr01", claims.Code)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SetSigningKey("unit-test-secret")
	token, _, err := GenerateToken("agent-1", "mr01", false)
	require.NoError(t, err)

	SetSigningKey("a-different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetSigningKey("unit-test-secret")
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	SetSigningKey("unit-test-secret")

	claims := &Claims{
		AgentID: "agent-1",
		Code:    "mr01",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "nlt_server_go",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}
