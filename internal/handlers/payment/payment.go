package payment

import (
	"github.com/gin-gonic/gin"

	"tifo_back_end/internal/services"
	"tifo_back_end/internal/utils"
)

type Handler struct {
	Payments *services.PaymentService
}

// CreateIntent crée l'intention de paiement passerelle pour une commande existante
func (h *Handler) CreateIntent(c *gin.Context) {
	result, err := h.Payments.CreateIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, result)
}

type verifyRequest struct {
	OrderID          string `json:"order_id" binding:"required"`
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string `json:"gateway_signature" binding:"required"`
}

// Verify : vérification de signature puis application du paiement sur la commande
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	order, err := h.Payments.VerifyAndApply(c.Request.Context(),
		req.OrderID, req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.OKMessage(c, order, "Paiement confirmé")
}
