package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tifo_back_end/internal/models"
	"tifo_back_end/internal/utils"
)

func TestCheckCredentials(t *testing.T) {
	hash, err := utils.HashPassword("bon-mot-de-passe")
	require.NoError(t, err)
	admin := &models.Admin{Email: "admin@tifo.be", Password: hash, IsActive: true}

	// identifiants corrects sur un compte actif
	assert.Nil(t, checkCredentials(admin, nil, "bon-mot-de-passe"))

	// les trois branches d'échec renvoient un message strictement identique :
	// impossible de deviner si le compte existe, est désactivé, ou si seul
	// le mot de passe est faux
	missing := checkCredentials(&models.Admin{}, gorm.ErrRecordNotFound, "bon-mot-de-passe")
	inactive := checkCredentials(&models.Admin{Email: admin.Email, Password: hash, IsActive: false}, nil, "bon-mot-de-passe")
	wrongPassword := checkCredentials(admin, nil, "mauvais-mot-de-passe")

	for _, failure := range []error{missing, inactive, wrongPassword} {
		require.Error(t, failure)
	}
	assert.Equal(t, missing.Error(), inactive.Error())
	assert.Equal(t, missing.Error(), wrongPassword.Error())
	assert.Equal(t, missing.Kind, inactive.Kind)
	assert.Equal(t, missing.Kind, wrongPassword.Kind)
}
