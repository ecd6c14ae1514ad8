package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tifo_back_end/internal/config"
	"tifo_back_end/internal/models"
)

// Databases regroupe les clients construits une fois au boot puis injectés
// dans les services (pas de singletons ambiants, les tests substituent des fakes)
type Databases struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect initialise Postgres, Redis, Elasticsearch et MinIO.
// Postgres et Redis sont bloquants (fatals) ; Elastic et MinIO dégradent
// gracieusement comme chez un moteur de recherche ou stockage d'images absent
// en dev local.
func Connect(cfg *config.Config) (*Databases, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbs := &Databases{}

	// 1. Postgres via GORM — TranslateError pour remonter les violations
	// d'unicité comme gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connexion Postgres échouée : %w", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusEntry{},
		&models.Admin{},
	); err != nil {
		return nil, fmt.Errorf("migration échouée : %w", err)
	}
	dbs.DB = db
	log.Println("✅ Connecté à Postgres")

	// 2. Redis
	dbs.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := dbs.Redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis échouée : %w", err)
	}
	log.Println("✅ Connecté à Redis")

	// 3. Elasticsearch (non bloquant)
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		log.Println("⚠️ Elasticsearch non configuré :", err)
	} else if res, err := esClient.Info(); err != nil {
		log.Println("⚠️ Elasticsearch injoignable, la recherche retombera sur Postgres :", err)
	} else {
		res.Body.Close()
		dbs.Elastic = esClient
		log.Println("✅ Connecté à Elasticsearch")
	}

	// 4. MinIO (non bloquant)
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
	} else {
		exists, err := minioClient.BucketExists(ctx, cfg.MinioBucket)
		if err != nil {
			log.Println("⚠️ Vérification bucket MinIO échouée :", err)
		} else {
			if !exists {
				if err := minioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
					log.Println("⚠️ Création bucket MinIO échouée :", err)
				} else {
					log.Println("🪣 Bucket créé :", cfg.MinioBucket)
				}
			} else {
				log.Println("🪣 Bucket MinIO déjà présent :", cfg.MinioBucket)
			}
			dbs.MinIO = minioClient
			log.Println("✅ Connecté à MinIO :", cfg.MinioEndpoint)
		}
	}

	log.Println("✅ Toutes les bases de données sont connectées")
	return dbs, nil
}
