package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "jti precisa existir para a denylist do logout")
	assert.Equal(t, "dice-play-api", claims.Issuer)
}

func TestVerifyTokenComSecretErrado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	token, err := GenerateToken(1, false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro-segredo")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenSemSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(1, false)
	assert.Error(t, err)
}
