package admin

import (
	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

func (h *Handler) List(c *gin.Context) {
	admins, err := h.Admins.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, admins)
}

func (h *Handler) Update(c *gin.Context) {
	var req services.UpdateAdminRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	admin, err := h.Admins.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, admin)
}

func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.Admins.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OKMessage(c, nil, "Admin désactivé")
}
