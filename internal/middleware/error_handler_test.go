package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tifo_back_end/internal/apperrors"
)

func errorTestRouter(production bool, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(production))
	r.GET("/boom", handler)
	return r
}

func getBoom(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_AppError(t *testing.T) {
	r := errorTestRouter(false, func(c *gin.Context) {
		c.Error(apperrors.NotFound("Commande introuvable"))
	})

	w := getBoom(r)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Commande introuvable")
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	r := errorTestRouter(false, func(c *gin.Context) {
		c.Error(apperrors.Validation("Données invalides", map[string]string{"email": "email"}))
	})

	w := getBoom(r)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"details"`)
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	// en développement le détail passe
	r := errorTestRouter(false, func(c *gin.Context) {
		c.Error(errors.New("pq: connection refused"))
	})
	w := getBoom(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "pq: connection refused")

	// en production il est masqué
	r = errorTestRouter(true, func(c *gin.Context) {
		c.Error(errors.New("pq: connection refused"))
	})
	w = getBoom(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.Contains(t, w.Body.String(), "Erreur interne du serveur")
}

func TestErrorHandler_NoErrorNoTouch(t *testing.T) {
	r := errorTestRouter(false, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := getBoom(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(true))
	r.GET("/panic", func(c *gin.Context) {
		panic("catastrophe")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "catastrophe")
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
