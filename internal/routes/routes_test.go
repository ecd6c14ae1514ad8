package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	adminhandler "tifo_back_end/internal/handlers/admin"
	orderhandler "tifo_back_end/internal/handlers/order"
	paymenthandler "tifo_back_end/internal/handlers/payment"
	producthandler "tifo_back_end/internal/handlers/product"
)

// Construit la table de routes sans toucher aux services : on n'exécute
// aucune requête, on inspecte seulement les routes enregistrées
func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(r, Deps{
		Orders:     &orderhandler.Handler{},
		Payments:   &paymenthandler.Handler{},
		Products:   &producthandler.Handler{},
		Admins:     &adminhandler.Handler{},
		Auth:       noop,
		LoginLimit: noop,
	})

	routes := make(map[string]bool)
	for _, ri := range r.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	return routes
}

func TestRegisterRoutes(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		"POST /api/v1/orders",
		"GET /api/v1/orders/track/:trackingId",
		"POST /api/v1/payments/create/:id",
		"POST /api/v1/payments/verify",
		"GET /api/v1/products",
		"GET /api/v1/products/featured",
		"GET /api/v1/products/search",
		"GET /api/v1/categories",
		"POST /api/v1/auth/login",
		"GET /api/v1/admin/me",
		"GET /api/v1/admin/orders",
		"PATCH /api/v1/admin/orders/:id/status",
		"GET /api/v1/admin/dashboard",
		"POST /api/v1/admin/register",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "route absente : %s", route)
	}
}

// Le back office a sa propre route de listing produits : contrairement à la
// route publique, elle passe par l'auth et peut donc voir include_inactive
func TestRegisterRoutes_AdminProductListing(t *testing.T) {
	routes := registeredRoutes(t)
	assert.True(t, routes["GET /api/v1/admin/products"])
}
