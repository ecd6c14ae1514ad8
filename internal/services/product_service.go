package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/models"
)

const (
	featuredCacheKey = "products:featured"
	featuredCacheTTL = 10 * time.Minute
)

type ProductService struct {
	DB    *gorm.DB
	Redis *redis.Client
	Index *ProductIndex // peut être nil si Elasticsearch indisponible
}

type ListProductsParams struct {
	Page            int
	Limit           int
	CategoryID      string
	Query           string
	Sort            string
	Order           string
	IncludeInactive bool
}

// allow-list des colonnes de tri pour ne jamais injecter de SQL arbitraire
var allowedProductSorts = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

// List : catalogue paginé (page par défaut 20, plafonnée à 100), filtres
// catégorie + recherche texte insensible à la casse sur nom/description/SKU
func (s *ProductService) List(ctx context.Context, p ListProductsParams) ([]models.Product, int64, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}

	sortCol, ok := allowedProductSorts[p.Sort]
	if !ok {
		sortCol = "created_at"
	}
	order := strings.ToUpper(p.Order)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	q := s.DB.WithContext(ctx).Model(&models.Product{})
	if !p.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if p.CategoryID != "" {
		q = q.Where("category_id = ?", p.CategoryID)
	}
	if p.Query != "" {
		like := "%" + p.Query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.FromDB(err, "Produit introuvable")
	}

	var products []models.Product
	if err := q.Preload("Category").Order(sortCol + " " + order).
		Offset((p.Page - 1) * p.Limit).Limit(p.Limit).Find(&products).Error; err != nil {
		return nil, 0, apperrors.FromDB(err, "Produit introuvable")
	}

	return products, total, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := s.DB.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "Produit introuvable")
	}
	return &p, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := s.DB.WithContext(ctx).Preload("Category").First(&p, "slug = ?", slug).Error; err != nil {
		return nil, apperrors.FromDB(err, "Produit introuvable")
	}
	return &p, nil
}

// Featured : produits mis en avant, avec cache Redis pour la vitrine
func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	if val, err := s.Redis.Get(ctx, featuredCacheKey).Result(); err == nil && val != "" {
		var cached []models.Product
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	var products []models.Product
	if err := s.DB.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("created_at DESC").Limit(20).Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "Produit introuvable")
	}

	if data, err := json.Marshal(products); err == nil {
		s.Redis.Set(ctx, featuredCacheKey, data, featuredCacheTTL)
	}

	return products, nil
}

func (s *ProductService) invalidateFeaturedCache(ctx context.Context) {
	if err := s.Redis.Del(ctx, featuredCacheKey).Err(); err != nil {
		log.Println("⚠️ Invalidation cache featured échouée :", err)
	}
}

type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Description string         `json:"description"`
	Price       int64          `json:"price" binding:"required,gt=0"`
	SalePrice   *int64         `json:"sale_price"`
	SKU         string         `json:"sku" binding:"required"`
	Stock       *int           `json:"stock"`
	ImageURL    string         `json:"image_url"`
	ImageURLs   []string       `json:"image_urls"`
	CategoryID  string         `json:"category_id" binding:"required"`
	IsActive    *bool          `json:"is_active"`
	IsFeatured  *bool          `json:"is_featured"`
	Metadata    map[string]any `json:"metadata"`
}

func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	// la catégorie doit exister avant de créer le produit
	var cat models.Category
	if err := s.DB.WithContext(ctx).First(&cat, "id = ?", req.CategoryID).Error; err != nil {
		return nil, apperrors.BadRequest("Catégorie introuvable")
	}

	p := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		SKU:         req.SKU,
		Stock:       0,
		ImageURL:    req.ImageURL,
		ImageURLs:   req.ImageURLs,
		CategoryID:  req.CategoryID,
		IsActive:    true,
		IsFeatured:  false,
		Metadata:    req.Metadata,
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}

	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, apperrors.FromDB(err, "Produit introuvable")
	}

	// Indexation Elasticsearch en arrière-plan
	if s.Index != nil {
		go s.Index.IndexProduct(p)
	}
	s.invalidateFeaturedCache(ctx)

	log.Println("✅ Produit créé :", p.Name)
	return &p, nil
}

type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	Slug        *string        `json:"slug"`
	Description *string        `json:"description"`
	Price       *int64         `json:"price"`
	SalePrice   *int64         `json:"sale_price"`
	SKU         *string        `json:"sku"`
	Stock       *int           `json:"stock"`
	ImageURL    *string        `json:"image_url"`
	ImageURLs   []string       `json:"image_urls"`
	CategoryID  *string        `json:"category_id"`
	IsActive    *bool          `json:"is_active"`
	IsFeatured  *bool          `json:"is_featured"`
	Metadata    map[string]any `json:"metadata"`
}

func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.SalePrice != nil {
		updates["sale_price"] = *req.SalePrice
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.ImageURLs != nil {
		updates["image_urls"] = req.ImageURLs
	}
	if req.CategoryID != nil {
		var cat models.Category
		if err := s.DB.WithContext(ctx).First(&cat, "id = ?", *req.CategoryID).Error; err != nil {
			return nil, apperrors.BadRequest("Catégorie introuvable")
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.Metadata != nil {
		updates["metadata"] = req.Metadata
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
			return nil, apperrors.FromDB(err, "Produit introuvable")
		}
	}

	p, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Index != nil {
		go s.Index.IndexProduct(*p)
	}
	s.invalidateFeaturedCache(ctx)

	return p, nil
}

// Delete : suppression dure (la désactivation douce passe par is_active)
func (s *ProductService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "Produit introuvable")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Produit introuvable")
	}

	if s.Index != nil {
		go s.Index.RemoveProduct(id)
	}
	s.invalidateFeaturedCache(ctx)

	log.Println("🗑️ Produit supprimé :", id)
	return nil
}

// Search : Elasticsearch en priorité, repli sur Postgres (ILIKE) si l'index
// est indisponible ou vide
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if s.Index != nil {
		results, err := s.Index.SearchProducts(ctx, query)
		if err == nil && len(results) > 0 {
			return results, nil
		}
		if err != nil {
			log.Println("⚠️ Recherche Elastic échouée, repli sur Postgres :", err)
		}
	}

	like := "%" + query + "%"
	var products []models.Product
	if err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", like, like, like).
		Limit(50).Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "Produit introuvable")
	}
	return products, nil
}
