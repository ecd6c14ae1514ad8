package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tifo_back_end/internal/models"
)

func testAdmin() models.Admin {
	return models.Admin{
		ID:    "adm-1",
		Email: "admin@tifo.be",
		Name:  "Admin Tifo",
		Role:  models.RoleManager,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "super-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "adm-1", claims.AdminID)
	assert.Equal(t, "admin@tifo.be", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "super-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "autre-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testAdmin(), "super-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "super-secret")
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT("pas-un-token", "super-secret")
	assert.Error(t, err)
}
