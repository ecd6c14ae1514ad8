package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tifo_back_end/internal/models"
)

func roleTestRouter(contextRole string, allowed ...models.AdminRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		if contextRole != "" {
			c.Set("role", contextRole)
		}
	}, RequireRole(allowed...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role    string
		allowed []models.AdminRole
		want    int
	}{
		{"ADMIN", []models.AdminRole{models.RoleAdmin}, http.StatusOK},
		{"MANAGER", []models.AdminRole{models.RoleAdmin, models.RoleManager}, http.StatusOK},
		{"STAFF", []models.AdminRole{models.RoleAdmin, models.RoleManager}, http.StatusForbidden},
		{"STAFF", []models.AdminRole{models.RoleAdmin, models.RoleManager, models.RoleStaff}, http.StatusOK},
		// aucun rôle dans le contexte (auth jamais passée)
		{"", []models.AdminRole{models.RoleAdmin}, http.StatusForbidden},
	}

	for _, c := range cases {
		r := roleTestRouter(c.role, c.allowed...)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, c.want, w.Code, "rôle %q avec liste %v", c.role, c.allowed)
	}
}
