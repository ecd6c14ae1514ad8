package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/models"
	"tifo_back_end/internal/utils"
)

// AdminLookup recharge l'admin en base : un compte révoqué ou supprimé perd
// l'accès immédiatement, sans attendre l'expiration du token
type AdminLookup func(ctx context.Context, id string) (*models.Admin, error)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"message": message, "code": "UNAUTHORIZED"},
	})
}

// AuthRequired vérifie le token bearer sur les routes protégées et place
// l'identité décodée dans le contexte Gin pour les contrôles de rôle en aval.
// Si une clé API machine est configurée, l'en-tête X-API-Key la court-circuite.
func AuthRequired(secret, apiKey string, lookup AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey != "" && c.GetHeader("X-API-Key") == apiKey {
			c.Set("admin_id", "api-key")
			c.Set("email", "machine")
			c.Set("role", string(models.RoleAdmin))
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Token manquant")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Format Authorization invalide")
			return
		}

		claims, err := utils.ParseJWT(parts[1], secret)
		if err != nil {
			log.Printf("❌ Erreur parsing JWT: %v", err)
			abortUnauthorized(c, "Token invalide ou expiré")
			return
		}

		admin, err := lookup(c.Request.Context(), claims.AdminID)
		if err != nil {
			abortUnauthorized(c, "Compte admin introuvable ou désactivé")
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("email", admin.Email)
		c.Set("role", string(admin.Role))

		c.Next()
	}
}
