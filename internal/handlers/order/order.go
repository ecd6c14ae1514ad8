package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/models"
	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

type Handler struct {
	Orders *services.OrderService
}

// Create : commande invité depuis la vitrine (201 ou 400 stock/validation)
func (h *Handler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	order, err := h.Orders.Create(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Created(c, order)
}

func (h *Handler) GetByID(c *gin.Context) {
	order, err := h.Orders.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, order)
}

// Track : suivi public par identifiant client (TRK-...)
func (h *Handler) Track(c *gin.Context) {
	order, err := h.Orders.FindByTrackingID(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, order)
}

// List : listing admin paginé avec filtre de statut optionnel
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")

	orders, total, err := h.Orders.List(c.Request.Context(), page, limit, status)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Paged(c, orders, utils.NewPagination(page, limit, total))
}

type updateStatusRequest struct {
	Status         models.OrderStatus `json:"status" binding:"required"`
	Note           string             `json:"note"`
	TrackingNumber string             `json:"tracking_number"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	order, err := h.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note, req.TrackingNumber)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OKMessage(c, order, "Statut mis à jour")
}
