package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tifo_back_end/internal/apperrors"
	"tifo_back_end/internal/config"
	"tifo_back_end/internal/models"
	"tifo_back_end/internal/utils"
)

// FlatShippingCost : tarif de livraison unique, pas calculé au poids ni à la distance
const FlatShippingCost int64 = 10

type OrderService struct {
	DB     *gorm.DB
	Mailer utils.Mailer
	Cfg    *config.Config
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerName    string                 `json:"customer_name" binding:"required"`
	CustomerEmail   string                 `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                 `json:"customer_phone" binding:"required"`
	ShippingAddress models.ShippingAddress `json:"shipping_address" binding:"required"`
	Items           []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	Notes           string                 `json:"notes"`
}

// buildOrderItems fige chaque ligne au prix du moment (promo prioritaire) et
// vérifie le stock en pré-contrôle. Le décrément SQL conditionnel reste le
// juge de paix contre les commandes concurrentes.
func buildOrderItems(reqItems []OrderItemRequest, products map[string]models.Product) ([]models.OrderItem, int64, error) {
	items := make([]models.OrderItem, 0, len(reqItems))
	var subtotal int64

	for _, ri := range reqItems {
		p, ok := products[ri.ProductID]
		if !ok {
			return nil, 0, apperrors.BadRequest("Produit introuvable ou inactif")
		}
		if p.Stock < ri.Quantity {
			return nil, 0, apperrors.BadRequest(fmt.Sprintf("Stock insuffisant pour %s", p.Name))
		}

		unit := p.UnitPrice()
		lineTotal := unit * int64(ri.Quantity)
		subtotal += lineTotal

		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Price:     unit,
			Quantity:  ri.Quantity,
			Total:     lineTotal,
		})
	}

	return items, subtotal, nil
}

// Create crée la commande dans UNE transaction : chargement groupé des
// produits actifs, décrément de stock conditionnel (pas de survente possible),
// snapshot des prix, puis écriture commande + lignes + historique d'un bloc.
// L'e-mail de confirmation part après commit, en fire-and-forget.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	var order models.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Where("id IN ? AND is_active = ?", ids, true).Find(&products).Error; err != nil {
			return apperrors.FromDB(err, "Produit introuvable")
		}
		if len(products) < len(ids) {
			return apperrors.BadRequest("Produit introuvable ou inactif")
		}

		byID := make(map[string]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		items, subtotal, err := buildOrderItems(req.Items, byID)
		if err != nil {
			return err
		}

		// Décrément atomique conditionnel : RowsAffected == 0 signifie qu'une
		// commande concurrente a pris le stock entre-temps
		for _, it := range items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return apperrors.FromDB(res.Error, "Produit introuvable")
			}
			if res.RowsAffected == 0 {
				return apperrors.BadRequest(fmt.Sprintf("Stock insuffisant pour %s", byID[it.ProductID].Name))
			}
		}

		// tax et discount sont à zéro dans le design actuel mais participent
		// quand même à l'arithmétique du total
		var tax, discount int64

		now := time.Now()
		order = models.Order{
			ID:              uuid.NewString(),
			TrackingID:      utils.GenerateTrackingID(),
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			Items:           items,
			Subtotal:        subtotal,
			ShippingCost:    FlatShippingCost,
			Tax:             tax,
			Discount:        discount,
			Total:           subtotal + FlatShippingCost + tax - discount,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			Notes:           req.Notes,
			StatusHistory: []models.OrderStatusEntry{
				{Status: models.OrderStatusPending, Note: "Commande créée", CreatedAt: now},
			},
		}

		// Mode "skip" : paiement contourné, commande marquée payée immédiatement
		if s.Cfg.PaymentMode == config.PaymentModeSkip {
			order.Status = models.OrderStatusPaid
			order.PaymentStatus = models.PaymentStatusCompleted
			order.PaidAt = &now
			order.StatusHistory = append(order.StatusHistory, models.OrderStatusEntry{
				Status:    models.OrderStatusPaid,
				Note:      "Paiement contourné (mode skip)",
				CreatedAt: now,
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return apperrors.FromDB(err, "Commande introuvable")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("🛒 Commande %s créée (%s) — total %d€", order.TrackingID, order.ID, order.Total)
	s.sendConfirmationAsync(order)

	return &order, nil
}

// sendConfirmationAsync : l'échec d'envoi ne doit JAMAIS faire échouer la
// création de commande — on log et on continue
func (s *OrderService) sendConfirmationAsync(order models.Order) {
	go func() {
		html := utils.GenerateOrderConfirmationHTML(order)

		pdf, err := utils.GenerateInvoicePDF(s.Cfg, order)
		if err != nil {
			log.Println("❌ Erreur génération PDF :", err)
			pdf = nil
		}

		if err := s.Mailer.Send(order.CustomerEmail, "Confirmation de votre commande Tifo", html, pdf); err != nil {
			log.Println("❌ Erreur envoi e-mail confirmation :", err)
		} else {
			log.Println("📧 E-mail de confirmation envoyé à", order.CustomerEmail)
		}
	}()
}

func (s *OrderService) sendStatusEmailAsync(order models.Order, status models.OrderStatus) {
	go func() {
		html := utils.GenerateStatusEmailHTML(order, status)
		if err := s.Mailer.Send(order.CustomerEmail, utils.StatusEmailSubject(status), html, nil); err != nil {
			log.Printf("❌ Erreur envoi email statut: %v", err)
		} else {
			log.Printf("📧 Email de statut envoyé: %s → %s", status, order.CustomerEmail)
		}
	}()
}

func (s *OrderService) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_entries.id ASC")
		})
}

func (s *OrderService) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.preload(s.DB.WithContext(ctx)).First(&order, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "Commande introuvable")
	}
	return &order, nil
}

func (s *OrderService) FindByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	var order models.Order
	if err := s.preload(s.DB.WithContext(ctx)).First(&order, "tracking_id = ?", trackingID).Error; err != nil {
		return nil, apperrors.FromDB(err, "Commande introuvable")
	}
	return &order, nil
}

// List : listing admin paginé, filtre optionnel par statut, plus récentes d'abord
func (s *OrderService) List(ctx context.Context, page, limit int, status string) ([]models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	q := s.DB.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.FromDB(err, "Commande introuvable")
	}

	var orders []models.Order
	if err := s.preload(q).Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, apperrors.FromDB(err, "Commande introuvable")
	}

	return orders, total, nil
}

// allowedTransitions : graphe explicite des transitions de statut légales.
// Une transition vers le même statut est tolérée (ré-ajoute une entrée
// d'historique sans écraser les timestamps déjà posés).
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:    {models.OrderStatusPaid, models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusPaid:       {models.OrderStatusProcessing, models.OrderStatusCancelled, models.OrderStatusRefunded},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered},
	models.OrderStatusDelivered:  {models.OrderStatusRefunded},
	models.OrderStatusCancelled:  {},
	models.OrderStatusRefunded:   {},
}

// TransitionAllowed indique si le passage from -> to est légal
func TransitionAllowed(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// UpdateStatus applique une transition légale, ajoute UNE entrée d'historique
// et pose shipped_at / delivered_at une seule fois (idempotent)
func (s *OrderService) UpdateStatus(ctx context.Context, id string, newStatus models.OrderStatus, note, trackingNumber string) (*models.Order, error) {
	order, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !TransitionAllowed(order.Status, newStatus) {
		return nil, apperrors.BadRequest(fmt.Sprintf("Transition de statut illégale : %s vers %s", order.Status, newStatus))
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", newStatus)
	}

	now := time.Now()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{"status": newStatus}
		if trackingNumber != "" {
			updates["tracking_number"] = trackingNumber
			order.TrackingNumber = trackingNumber
		}
		if newStatus == models.OrderStatusShipped && order.ShippedAt == nil {
			updates["shipped_at"] = now
			order.ShippedAt = &now
		}
		if newStatus == models.OrderStatusDelivered && order.DeliveredAt == nil {
			updates["delivered_at"] = now
			order.DeliveredAt = &now
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return apperrors.FromDB(err, "Commande introuvable")
		}

		entry := models.OrderStatusEntry{OrderID: id, Status: newStatus, Note: note, CreatedAt: now}
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.FromDB(err, "Commande introuvable")
		}
		order.StatusHistory = append(order.StatusHistory, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = newStatus
	log.Printf("📦 Commande %s : statut %s", order.TrackingID, newStatus)
	s.sendStatusEmailAsync(*order, newStatus)

	return order, nil
}

// UpdatePayment marque la commande payée et archive les identifiants de la
// passerelle pour audit/litige. Idempotent : une commande déjà payée est
// retournée telle quelle.
func (s *OrderService) UpdatePayment(ctx context.Context, id, gatewayOrderID, gatewayPaymentID, gatewaySignature string) (*models.Order, error) {
	order, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == models.PaymentStatusCompleted {
		return order, nil
	}

	now := time.Now()
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":             models.OrderStatusPaid,
			"payment_status":     models.PaymentStatusCompleted,
			"paid_at":            now,
			"gateway_order_id":   gatewayOrderID,
			"gateway_payment_id": gatewayPaymentID,
			"gateway_signature":  gatewaySignature,
		}
		if err := tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return apperrors.FromDB(err, "Commande introuvable")
		}

		entry := models.OrderStatusEntry{OrderID: id, Status: models.OrderStatusPaid, Note: "Paiement confirmé", CreatedAt: now}
		if err := tx.Create(&entry).Error; err != nil {
			return apperrors.FromDB(err, "Commande introuvable")
		}
		order.StatusHistory = append(order.StatusHistory, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = models.OrderStatusPaid
	order.PaymentStatus = models.PaymentStatusCompleted
	order.PaidAt = &now
	order.GatewayOrderID = gatewayOrderID
	order.GatewayPaymentID = gatewayPaymentID
	order.GatewaySignature = gatewaySignature

	log.Printf("💳 Commande %s payée (%s)", order.TrackingID, gatewayPaymentID)
	s.sendStatusEmailAsync(*order, models.OrderStatusPaid)

	return order, nil
}

// attachGatewayOrder mémorise l'id d'intention dès sa création pour la réconciliation
func (s *OrderService) attachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	if err := s.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		UpdateColumn("gateway_order_id", gatewayOrderID).Error; err != nil {
		return apperrors.FromDB(err, "Commande introuvable")
	}
	return nil
}
