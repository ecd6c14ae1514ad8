package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductUnitPrice(t *testing.T) {
	p := Product{Price: 89}
	assert.Equal(t, int64(89), p.UnitPrice())

	sale := int64(75)
	p.SalePrice = &sale
	assert.Equal(t, int64(75), p.UnitPrice())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleManager))
	assert.True(t, ValidRole(RoleStaff))
	assert.False(t, ValidRole("SUPERADMIN"))
	assert.False(t, ValidRole(""))
}
