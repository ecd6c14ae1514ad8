package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/models"
)

type PaymentService struct {
	Orders   *OrderService
	Gateway  PaymentGateway
	Secret   string // secret de signature de la passerelle
	Currency string
}

type PaymentIntentResult struct {
	GatewayOrderID string        `json:"gateway_order_id"`
	ClientSecret   string        `json:"client_secret,omitempty"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	Order          *models.Order `json:"order"`
}

// CreateIntent crée l'intention de paiement côté passerelle pour le total de
// la commande, en unités mineures (centimes), taguée avec l'id interne et
// l'e-mail client pour la réconciliation
func (s *PaymentService) CreateIntent(ctx context.Context, orderID string) (*PaymentIntentResult, error) {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	amountMinor := order.Total * 100

	ref, err := s.Gateway.CreateIntent(ctx, amountMinor, s.Currency, map[string]string{
		"order_id":    order.ID,
		"tracking_id": order.TrackingID,
		"email":       order.CustomerEmail,
	})
	if err != nil {
		log.Println("❌ Erreur passerelle de paiement:", err)
		return nil, apperrors.Internal("Erreur création paiement")
	}

	if err := s.Orders.attachGatewayOrder(ctx, order.ID, ref.ID); err != nil {
		return nil, err
	}
	order.GatewayOrderID = ref.ID

	log.Printf("💳 Intention de paiement créée : %s (%d %s) pour %s", ref.ID, amountMinor, s.Currency, order.CustomerEmail)

	return &PaymentIntentResult{
		GatewayOrderID: ref.ID,
		ClientSecret:   ref.ClientSecret,
		Amount:         amountMinor,
		Currency:       s.Currency,
		Order:          order,
	}, nil
}

// SignPayment calcule la signature attendue :
// HMAC-SHA256(secret, gatewayOrderID + "|" + gatewayPaymentID), encodée en hex
func SignPayment(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compare la signature fournie à celle recalculée, en temps
// constant pour ne pas laisser fuiter d'information par timing
func VerifySignature(secret, gatewayOrderID, gatewayPaymentID, signature string) bool {
	expected := SignPayment(secret, gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyAndApply vérifie la signature de confirmation de paiement avant de
// marquer la commande payée. Signature invalide : erreur 400, commande intacte.
// Sans secret configuré (mode skip), un HMAC à clé vide serait forgeable par
// n'importe quel client : on refuse la vérification plutôt que de la calculer.
func (s *PaymentService) VerifyAndApply(ctx context.Context, orderID, gatewayOrderID, gatewayPaymentID, gatewaySignature string) (*models.Order, error) {
	if s.Secret == "" {
		log.Printf("⚠️ Vérification de paiement refusée pour %s : aucun secret configuré", orderID)
		return nil, apperrors.Internal("Vérification de paiement non configurée")
	}

	if !VerifySignature(s.Secret, gatewayOrderID, gatewayPaymentID, gatewaySignature) {
		log.Printf("❌ Signature de paiement invalide pour la commande %s", orderID)
		return nil, apperrors.BadRequest("Signature de paiement invalide")
	}

	return s.Orders.UpdatePayment(ctx, orderID, gatewayOrderID, gatewayPaymentID, gatewaySignature)
}
