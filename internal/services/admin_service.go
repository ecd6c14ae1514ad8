package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/config"
	"tifo_back_end/internal/models"
	"tifo_back_end/internal/utils"
)

type AdminService struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// checkCredentials renvoie exactement la même erreur générique quel que soit
// le champ fautif (compte inexistant, inactif ou mauvais mot de passe) pour ne
// rien laisser fuiter sur l'existence ou l'état du compte
func checkCredentials(admin *models.Admin, lookupErr error, password string) *apperrors.Error {
	genericErr := apperrors.Unauthorized("Email ou mot de passe incorrect")

	if lookupErr != nil {
		return genericErr
	}
	if !admin.IsActive {
		return genericErr
	}
	if !utils.VerifyPassword(password, admin.Password) {
		return genericErr
	}
	return nil
}

// Login vérifie les identifiants et émet le token bearer
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	var admin models.Admin
	lookupErr := s.DB.WithContext(ctx).First(&admin, "email = ?", email).Error
	if err := checkCredentials(&admin, lookupErr, password); err != nil {
		return "", nil, err
	}

	now := time.Now()
	if err := s.DB.WithContext(ctx).Model(&admin).UpdateColumn("last_login", now).Error; err != nil {
		log.Println("⚠️ Mise à jour last_login échouée :", err)
	}
	admin.LastLogin = &now

	token, err := utils.GenerateJWT(admin, s.Cfg.JWTSecret, s.Cfg.JWTExpiry)
	if err != nil {
		return "", nil, apperrors.Internal("Erreur génération token")
	}

	log.Printf("🔐 Connexion admin : %s (%s)", admin.Email, admin.Role)
	return token, &admin, nil
}

// FindActive recharge l'admin à chaque requête authentifiée : un compte
// supprimé ou désactivé perd l'accès immédiatement, sans attendre
// l'expiration du token
func (s *AdminService) FindActive(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, apperrors.Unauthorized("Compte admin introuvable")
	}
	if !admin.IsActive {
		return nil, apperrors.Unauthorized("Compte admin désactivé")
	}
	return &admin, nil
}

type RegisterAdminRequest struct {
	Email    string           `json:"email" binding:"required,email"`
	Name     string           `json:"name" binding:"required"`
	Password string           `json:"password" binding:"required,min=8"`
	Role     models.AdminRole `json:"role" binding:"required"`
}

func (s *AdminService) Register(ctx context.Context, req RegisterAdminRequest) (*models.Admin, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.BadRequest("Rôle invalide (attendu: ADMIN, MANAGER ou STAFF)")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Erreur hashage mot de passe")
	}

	admin := models.Admin{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Name:     req.Name,
		Password: hash,
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, apperrors.FromDB(err, "Admin introuvable")
	}

	log.Printf("✅ Admin créé : %s (%s)", admin.Email, admin.Role)
	return &admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.WithContext(ctx).Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, apperrors.FromDB(err, "Admin introuvable")
	}
	return admins, nil
}

type UpdateAdminRequest struct {
	Name     *string           `json:"name"`
	Role     *models.AdminRole `json:"role"`
	IsActive *bool             `json:"is_active"`
}

func (s *AdminService) Update(ctx context.Context, id string, req UpdateAdminRequest) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "Admin introuvable")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, apperrors.BadRequest("Rôle invalide (attendu: ADMIN, MANAGER ou STAFF)")
		}
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&admin).Updates(updates).Error; err != nil {
			return nil, apperrors.FromDB(err, "Admin introuvable")
		}
	}
	return &admin, nil
}

// Deactivate : désactivation douce, le compte reste en base pour l'audit
func (s *AdminService) Deactivate(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", id).UpdateColumn("is_active", false)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "Admin introuvable")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Admin introuvable")
	}
	log.Println("🔒 Admin désactivé :", id)
	return nil
}
