package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/apperrors"
)

// ErrorHandler traduit les erreurs attachées au contexte en statut HTTP +
// enveloppe uniforme. C'est l'unique endroit où une erreur devient une
// réponse : tout est loggé côté serveur, aucune stack trace ne part au
// client en production.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("❌ %s %s : %v", c.Request.Method, c.Request.URL.Path, err)

		if appErr, ok := apperrors.AsAppError(err); ok {
			body := gin.H{"message": appErr.Message}
			if appErr.Code != "" {
				body["code"] = appErr.Code
			}
			if appErr.Details != nil {
				body["details"] = appErr.Details
			}
			c.JSON(apperrors.HTTPStatus(appErr.Kind), gin.H{"success": false, "error": body})
			return
		}

		// erreur inattendue : détail masqué en production
		message := "Erreur interne du serveur"
		if !production {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"message": message, "code": "INTERNAL_ERROR"},
		})
	}
}

// Recovery intercepte les panics et répond avec la même enveloppe d'erreur
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("❌ Panic sur %s %s : %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"message": "Erreur interne du serveur", "code": "INTERNAL_ERROR"},
		})
	})
}
