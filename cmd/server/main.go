package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"

	"tifo_back_end/internal/config"
	"tifo_back_end/internal/database"
	adminhandler "tifo_back_end/internal/handlers/admin"
	orderhandler "tifo_back_end/internal/handlers/order"
	paymenthandler "tifo_back_end/internal/handlers/payment"
	producthandler "tifo_back_end/internal/handlers/product"
	"tifo_back_end/internal/middleware"
	"tifo_back_end/internal/routes"
	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ ", err)
	}

	stripe.Key = cfg.StripeSecretKey
	log.Println("✅ Stripe initialisé")

	dbs, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	// --- Services (dépendances injectées, pas de singletons) ---
	var index *services.ProductIndex
	if dbs.Elastic != nil {
		index = &services.ProductIndex{Client: dbs.Elastic}
	}
	var storage *services.Storage
	if dbs.MinIO != nil {
		storage = services.NewStorage(dbs.MinIO, cfg)
	}

	mailer := utils.NewSMTPMailer(cfg)
	orderSvc := &services.OrderService{DB: dbs.DB, Mailer: mailer, Cfg: cfg}
	paymentSvc := &services.PaymentService{
		Orders:   orderSvc,
		Gateway:  services.StripeGateway{},
		Secret:   cfg.StripeWebhookSecret,
		Currency: cfg.PaymentCurrency,
	}
	productSvc := &services.ProductService{DB: dbs.DB, Redis: dbs.Redis, Index: index}
	categorySvc := &services.CategoryService{DB: dbs.DB}
	adminSvc := &services.AdminService{DB: dbs.DB, Cfg: cfg}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler(cfg.IsProduction()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.APIRateLimit(dbs.Redis, cfg.RateLimitWindow, cfg.RateLimitMax))

	routes.RegisterRoutes(r, routes.Deps{
		Orders:     &orderhandler.Handler{Orders: orderSvc},
		Payments:   &paymenthandler.Handler{Payments: paymentSvc},
		Products:   &producthandler.Handler{Products: productSvc, Categories: categorySvc, Storage: storage},
		Admins:     &adminhandler.Handler{Admins: adminSvc, Orders: orderSvc},
		Auth:       middleware.AuthRequired(cfg.JWTSecret, cfg.APIKey, adminSvc.FindActive),
		LoginLimit: middleware.LoginRateLimit(dbs.Redis),
	})

	log.Println("🚀 Serveur Tifo lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Serveur arrêté :", err)
	}
}
