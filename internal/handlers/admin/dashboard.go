package admin

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/utils"
)

// DashboardStats retourne les statistiques globales du back office
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.Orders.DashboardStats(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, stats)
}

// Analytics retourne la série jour par jour (revenus + commandes) sur la fenêtre demandée
func (h *Handler) Analytics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	points, err := h.Orders.Analytics(c.Request.Context(), days)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, points)
}
