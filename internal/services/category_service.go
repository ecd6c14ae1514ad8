package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/models"
)

type CategoryService struct {
	DB *gorm.DB
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.FromDB(err, "Catégorie introuvable")
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	if err := s.DB.WithContext(ctx).First(&cat, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "Catégorie introuvable")
	}
	return &cat, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var cat models.Category
	if err := s.DB.WithContext(ctx).First(&cat, "slug = ?", slug).Error; err != nil {
		return nil, apperrors.FromDB(err, "Catégorie introuvable")
	}
	return &cat, nil
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*models.Category, error) {
	cat := models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, apperrors.FromDB(err, "Catégorie introuvable")
	}
	log.Println("✅ Catégorie créée :", cat.Name)
	return &cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (*models.Category, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cat.Name = req.Name
	cat.Slug = req.Slug
	cat.Description = req.Description
	cat.ImageURL = req.ImageURL

	if err := s.DB.WithContext(ctx).Save(cat).Error; err != nil {
		return nil, apperrors.FromDB(err, "Catégorie introuvable")
	}
	return cat, nil
}

// Delete refuse de supprimer une catégorie encore référencée par des produits
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.FromDB(err, "Catégorie introuvable")
	}
	if count > 0 {
		return apperrors.Conflict("Des produits référencent encore cette catégorie")
	}

	res := s.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "Catégorie introuvable")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Catégorie introuvable")
	}
	return nil
}
