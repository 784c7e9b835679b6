package jwt

import (
	"testing"
	"time"

	"eventra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	user := &models.User{
		ID:           5,
		Email:        "alice@example.com",
		TokenVersion: 2,
	}

	token, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, 5, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, 2, claims.TokenVersion)
	assert.Equal(t, "5", claims.Subject)
	assert.NotEmpty(t, claims.ID, "jti should be set")
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 5, Email: "alice@example.com"}

	token, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 5, Email: "alice@example.com"}

	token, err := NewToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.token", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensDiffer(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 5, Email: "alice@example.com"}

	a, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	b, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	// Random jti keeps otherwise identical tokens distinct.
	assert.NotEqual(t, a, b)
}
