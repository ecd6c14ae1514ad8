package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tifo_back_end/internal/models"
)

func testCatalog() map[string]models.Product {
	sale := int64(75)
	return map[string]models.Product{
		"p1": {ID: "p1", Name: "Maillot Domicile 2026", SKU: "TIFO-DOM-26", Price: 89, Stock: 10},
		"p2": {ID: "p2", Name: "Maillot Extérieur 2026", SKU: "TIFO-EXT-26", Price: 95, SalePrice: &sale, Stock: 3},
	}
}

func TestBuildOrderItems_Totals(t *testing.T) {
	items, subtotal, err := buildOrderItems([]OrderItemRequest{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}, testCatalog())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// p1 : 2 × 89, p2 : prix promo 75 prioritaire sur 95
	assert.Equal(t, int64(178), items[0].Total)
	assert.Equal(t, int64(75), items[1].Price)
	assert.Equal(t, int64(253), subtotal)

	// snapshot complet de la ligne
	assert.Equal(t, "Maillot Domicile 2026", items[0].Name)
	assert.Equal(t, "TIFO-DOM-26", items[0].SKU)
	assert.NotEmpty(t, items[0].ID)
}

func TestBuildOrderItems_UnknownProduct(t *testing.T) {
	_, _, err := buildOrderItems([]OrderItemRequest{
		{ProductID: "inconnu", Quantity: 1},
	}, testCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Produit introuvable")
}

func TestBuildOrderItems_InsufficientStock(t *testing.T) {
	_, _, err := buildOrderItems([]OrderItemRequest{
		{ProductID: "p2", Quantity: 4},
	}, testCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stock insuffisant")
	assert.Contains(t, err.Error(), "Maillot Extérieur 2026")
}

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		allowed  bool
	}{
		{models.OrderStatusPending, models.OrderStatusPaid, true},
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusPaid, models.OrderStatusProcessing, true},
		{models.OrderStatusPaid, models.OrderStatusRefunded, true},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusProcessing, models.OrderStatusDelivered, false},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusRefunded, true},
		{models.OrderStatusDelivered, models.OrderStatusPending, false},
		// statuts terminaux
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
		{models.OrderStatusRefunded, models.OrderStatusPaid, false},
		// transition vers soi-même toujours tolérée
		{models.OrderStatusShipped, models.OrderStatusShipped, true},
		{models.OrderStatusCancelled, models.OrderStatusCancelled, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, TransitionAllowed(c.from, c.to), "%s → %s", c.from, c.to)
	}
}
