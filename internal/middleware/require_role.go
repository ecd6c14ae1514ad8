package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/models"
)

// RequireRole vérifie que le rôle authentifié figure dans la liste autorisée
func RequireRole(roles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"message": "Accès réservé : rôle insuffisant", "code": "FORBIDDEN"},
		})
	}
}
