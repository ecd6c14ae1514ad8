package product

import (
	"time"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/utils"
)

// UploadImage pousse une image produit dans MinIO et retourne son URL publique
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.Fail(c, apperrors.BadRequest("Fichier 'image' manquant"))
		return
	}

	url, err := h.Storage.UploadProductImage(c.Request.Context(), file)
	if err != nil {
		utils.Fail(c, apperrors.Internal("Erreur upload image"))
		return
	}

	utils.Created(c, gin.H{"url": url})
}

// SignedImageURL génère une URL signée temporaire pour un objet du bucket
func (h *Handler) SignedImageURL(c *gin.Context) {
	objectPath := c.Query("path")
	if objectPath == "" {
		utils.Fail(c, apperrors.BadRequest("paramètre 'path' manquant"))
		return
	}

	signed, err := h.Storage.SignedURL(c.Request.Context(), objectPath, 24*time.Hour)
	if err != nil {
		utils.Fail(c, apperrors.Internal("Erreur génération URL signée"))
		return
	}

	utils.OK(c, gin.H{"url": signed})
}
