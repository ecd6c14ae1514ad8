package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"tifo_back_end/internal/config"
)

// Storage gère les images produit dans MinIO
type Storage struct {
	Client   *minio.Client
	Endpoint string
	Bucket   string
	UseSSL   bool
}

func NewStorage(client *minio.Client, cfg *config.Config) *Storage {
	return &Storage{
		Client:   client,
		Endpoint: cfg.MinioEndpoint,
		Bucket:   cfg.MinioBucket,
		UseSSL:   cfg.MinioUseSSL,
	}
}

func (s *Storage) baseURL() string {
	scheme := "http"
	if s.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/", scheme, s.Endpoint, s.Bucket)
}

// UploadProductImage pousse le fichier dans le bucket sous products/<uuid>-<nom>
// et retourne l'URL publique de l'objet
func (s *Storage) UploadProductImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s == nil || s.Client == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := fmt.Sprintf("products/%s-%s", uuid.NewString(), file.Filename)

	_, err = s.Client.PutObject(ctx, s.Bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return s.baseURL() + objectName, nil
}

// SignedURL génère une URL signée avec expiration pour un objet du bucket.
// Accepte l'URL complète ou le chemin relatif de l'objet.
func (s *Storage) SignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if s == nil || s.Client == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	key := strings.TrimPrefix(objectPath, s.baseURL())

	presignedURL, err := s.Client.PresignedGetObject(ctx, s.Bucket, key, duration, make(url.Values))
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}
