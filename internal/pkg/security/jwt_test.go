package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("john@dragonclantv.ai", "creator-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "john@dragonclantv.ai", claims.Email)
	assert.Equal(t, "creator-1", claims.CreatorID)
	assert.Equal(t, "creator-1", claims.Subject)
}

func TestValidateTokenErrors(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken("a@b.c", "creator-1", "secret", time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(token, "not-the-secret")
		assert.Error(t, err)
	})

	t.Run("expired token keeps the jwt sentinel", func(t *testing.T) {
		token, err := GenerateToken("a@b.c", "creator-1", "secret", -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(token, "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ValidateToken("not-a-token", "secret")
		assert.Error(t, err)
	})
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken("a@b.c", "creator-1", "secret", time.Hour)
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = ExtractSignature("one.two")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("dragon2026")
	require.NoError(t, err)
	assert.NotEqual(t, "dragon2026", hash)

	assert.NoError(t, CheckPasswordHash("dragon2026", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))

	_, err = HashPassword("")
	assert.Error(t, err)
}
