package auth

import (
	"testing"
	"time"

	"eventbridge_admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate(42, "admin@example.com", models.AccountTypeAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.AccountTypeAdmin, claims.AccountType)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(1, "user@example.com", models.AccountTypeCustomer)
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)
	other := NewTokenManager("secret-two", time.Hour)

	token, err := tm.Generate(1, "user@example.com", models.AccountTypeCustomer)
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// A token signed with "none" must not pass even though its payload decodes.
func TestUnsignedAlgorithmRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":          1,
		"email":       "attacker@example.com",
		"accountType": "ADMIN",
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
