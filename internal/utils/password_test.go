package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("maillot-domicile-2026")
	require.NoError(t, err)
	require.NotEqual(t, "maillot-domicile-2026", hash)

	assert.True(t, VerifyPassword("maillot-domicile-2026", hash))
	assert.False(t, VerifyPassword("mauvais-mot-de-passe", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	// même mot de passe, sels différents
	assert.NotEqual(t, h1, h2)
}
