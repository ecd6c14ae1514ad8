package admin

import (
	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

type Handler struct {
	Admins *services.AdminService
	Orders *services.OrderService
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login : le hash de mot de passe ne sort jamais (json:"-" sur le modèle)
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	token, admin, err := h.Admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OK(c, gin.H{"token": token, "admin": admin})
}

// Me retourne l'identité de l'admin authentifié
func (h *Handler) Me(c *gin.Context) {
	admin, err := h.Admins.FindActive(c.Request.Context(), c.GetString("admin_id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, admin)
}

func (h *Handler) Register(c *gin.Context) {
	var req services.RegisterAdminRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	admin, err := h.Admins.Register(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, admin)
}
