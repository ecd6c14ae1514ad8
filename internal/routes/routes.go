package routes

import (
	"github.com/gin-gonic/gin"

	adminhandler "tifo_back_end/internal/handlers/admin"
	orderhandler "tifo_back_end/internal/handlers/order"
	paymenthandler "tifo_back_end/internal/handlers/payment"
	producthandler "tifo_back_end/internal/handlers/product"
	"tifo_back_end/internal/middleware"
	"tifo_back_end/internal/models"
)

type Deps struct {
	Orders   *orderhandler.Handler
	Payments *paymenthandler.Handler
	Products *producthandler.Handler
	Admins   *adminhandler.Handler

	Auth       gin.HandlerFunc // vérification bearer/API key
	LoginLimit gin.HandlerFunc
}

// RegisterRoutes câble toutes les routes sous /api/v1
func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api/v1")

	staffOrUp := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleStaff)
	managerOrUp := middleware.RequireRole(models.RoleAdmin, models.RoleManager)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// --- Vitrine (public) ---
	api.GET("/products", d.Products.List)
	api.GET("/products/featured", d.Products.Featured)
	api.GET("/products/search", d.Products.Search)
	api.GET("/products/slug/:slug", d.Products.GetBySlug)
	api.GET("/products/:id", d.Products.Get)
	api.GET("/categories", d.Products.ListCategories)
	api.GET("/categories/:id", d.Products.GetCategory)

	api.POST("/orders", d.Orders.Create)
	api.GET("/orders/track/:trackingId", d.Orders.Track)
	api.GET("/orders/:id", d.Orders.GetByID)

	api.POST("/payments/create/:id", d.Payments.CreateIntent)
	api.POST("/payments/verify", d.Payments.Verify)

	// --- Auth ---
	api.POST("/auth/login", d.LoginLimit, d.Admins.Login)

	// --- Back office (token requis) ---
	protected := api.Group("", d.Auth)

	protected.GET("/admin/me", d.Admins.Me)

	// même handler que la vitrine, mais le rôle présent dans le contexte
	// débloque include_inactive pour voir les produits désactivés
	protected.GET("/admin/products", staffOrUp, d.Products.List)

	protected.GET("/admin/orders", staffOrUp, d.Orders.List)
	protected.PATCH("/admin/orders/:id/status", staffOrUp, d.Orders.UpdateStatus)

	protected.GET("/admin/dashboard", staffOrUp, d.Admins.DashboardStats)
	protected.GET("/admin/analytics", managerOrUp, d.Admins.Analytics)

	protected.POST("/products", managerOrUp, d.Products.Create)
	protected.PATCH("/products/:id", managerOrUp, d.Products.Update)
	protected.DELETE("/products/:id", adminOnly, d.Products.Delete)
	protected.POST("/products/images", managerOrUp, d.Products.UploadImage)
	protected.GET("/products/images/signed", staffOrUp, d.Products.SignedImageURL)

	protected.POST("/categories", managerOrUp, d.Products.CreateCategory)
	protected.PATCH("/categories/:id", managerOrUp, d.Products.UpdateCategory)
	protected.DELETE("/categories/:id", adminOnly, d.Products.DeleteCategory)

	protected.POST("/admin/register", adminOnly, d.Admins.Register)
	protected.GET("/admin/admins", adminOnly, d.Admins.List)
	protected.PATCH("/admin/admins/:id", adminOnly, d.Admins.Update)
	protected.DELETE("/admin/admins/:id", adminOnly, d.Admins.Deactivate)
}
