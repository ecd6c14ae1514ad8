package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PaymentMode contrôle le comportement à la création de commande :
//   - "skip"   : la commande est marquée payée immédiatement (pas de passage
//     par la passerelle de paiement)
//   - "verify" : la commande reste PENDING jusqu'à vérification de la
//     signature renvoyée par la passerelle
type PaymentMode string

const (
	PaymentModeSkip   PaymentMode = "skip"
	PaymentModeVerify PaymentMode = "verify"
)

type Config struct {
	Env  string
	Port string

	DatabaseURL string

	JWTSecret   string
	JWTExpiry   time.Duration
	APIKey      string // optionnel : auth machine-à-machine
	CORSOrigins []string

	StripeSecretKey     string
	StripeWebhookSecret string // optionnel en mode skip, requis en mode verify
	PaymentCurrency     string
	PaymentMode         PaymentMode

	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	EmailFrom     string
	EmailReplyTo  string // optionnel

	RedisHost     string
	RedisPassword string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	FrontendInvoiceURL string

	RateLimitWindow time.Duration
	RateLimitMax    int

	CompanyIBAN string
	CompanyBIC  string
	CompanyName string
}

// Load charge le .env puis construit et valide la configuration.
// Toute variable requise manquante ou invalide est listée dans une seule
// erreur fatale pour que le boot échoue vite et clairement.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	var problems []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			problems = append(problems, key+" manquant")
		}
		return v
	}

	cfg := &Config{
		Env:                 getEnvDefault("APP_ENV", "development"),
		Port:                getEnvDefault("PORT", "8080"),
		DatabaseURL:         required("DATABASE_URL"),
		JWTSecret:           required("JWT_SECRET"),
		APIKey:              os.Getenv("API_KEY"),
		StripeSecretKey:     required("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PaymentCurrency:     getEnvDefault("PAYMENT_CURRENCY", "eur"),
		SMTPHost:            required("SMTP_HOST"),
		SMTPUsername:        required("SMTP_USERNAME"),
		SMTPPassword:        required("SMTP_PASSWORD"),
		EmailFrom:           required("EMAIL_FROM"),
		EmailReplyTo:        os.Getenv("EMAIL_REPLY_TO"),
		RedisHost:           required("REDIS_HOST"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		ElasticURL:          required("ELASTIC_URL"),
		ElasticUser:         os.Getenv("ELASTIC_USER"),
		ElasticPassword:     os.Getenv("ELASTIC_PASSWORD"),
		MinioEndpoint:       required("MINIO_ENDPOINT"),
		MinioAccessKey:      required("MINIO_ACCESS_KEY"),
		MinioSecretKey:      required("MINIO_SECRET_KEY"),
		MinioBucket:         required("MINIO_BUCKET"),
		MinioUseSSL:         os.Getenv("MINIO_USE_SSL") == "true",
		FrontendInvoiceURL:  getEnvDefault("FRONTEND_INVOICE_URL", "http://localhost:3000/invoice"),
		CompanyIBAN:         getEnvDefault("COMPANY_IBAN", "BE12345678901234"),
		CompanyBIC:          getEnvDefault("COMPANY_BIC", "KREDBEBB"),
		CompanyName:         getEnvDefault("COMPANY_NAME", "Tifo SRL"),
	}

	corsOrigins := required("CORS_ORIGINS")
	for _, o := range strings.Split(corsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	expiryHours, err := strconv.Atoi(getEnvDefault("JWT_EXPIRY_HOURS", "24"))
	if err != nil || expiryHours <= 0 {
		problems = append(problems, "JWT_EXPIRY_HOURS invalide (entier positif attendu)")
	}
	cfg.JWTExpiry = time.Duration(expiryHours) * time.Hour

	smtpPort, err := strconv.Atoi(getEnvDefault("SMTP_PORT", "587"))
	if err != nil || smtpPort <= 0 {
		problems = append(problems, "SMTP_PORT invalide (entier positif attendu)")
	}
	cfg.SMTPPort = smtpPort

	windowSecs, err := strconv.Atoi(getEnvDefault("RATE_LIMIT_WINDOW_SECONDS", "60"))
	if err != nil || windowSecs <= 0 {
		problems = append(problems, "RATE_LIMIT_WINDOW_SECONDS invalide")
	}
	cfg.RateLimitWindow = time.Duration(windowSecs) * time.Second

	maxReq, err := strconv.Atoi(getEnvDefault("RATE_LIMIT_MAX", "100"))
	if err != nil || maxReq <= 0 {
		problems = append(problems, "RATE_LIMIT_MAX invalide")
	}
	cfg.RateLimitMax = maxReq

	mode := PaymentMode(getEnvDefault("ORDER_PAYMENT_MODE", "skip"))
	if mode != PaymentModeSkip && mode != PaymentModeVerify {
		problems = append(problems, "ORDER_PAYMENT_MODE invalide (attendu: skip ou verify)")
	}
	cfg.PaymentMode = mode

	// La vérification de signature a besoin du secret webhook
	if mode == PaymentModeVerify && cfg.StripeWebhookSecret == "" {
		problems = append(problems, "STRIPE_WEBHOOK_SECRET requis en mode ORDER_PAYMENT_MODE=verify")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration invalide : %s", strings.Join(problems, " ; "))
	}

	return cfg, nil
}

// IsProduction indique si on masque le détail des erreurs internes
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
