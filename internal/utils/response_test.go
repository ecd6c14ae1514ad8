package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	// total multiple exact de la limite
	p = NewPagination(1, 10, 30)
	assert.Equal(t, 3, p.TotalPages)

	// aucun résultat
	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)

	// limite nulle : pas de division par zéro
	p = NewPagination(1, 0, 45)
	assert.Equal(t, 0, p.TotalPages)
}
