package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("same password", first))
	assert.True(t, CheckPasswordHash("same password", second))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short1"))
	assert.NoError(t, ValidatePassword("exactly8"))
	assert.NoError(t, ValidatePassword("a much longer password"))
}
