package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// ShippingAddress est embarquée dans la commande (colonnes préfixées shipping_)
type ShippingAddress struct {
	FullName     string `gorm:"size:200" json:"full_name" binding:"required"`
	Phone        string `gorm:"size:32" json:"phone" binding:"required"`
	AddressLine1 string `gorm:"size:255" json:"address_line1" binding:"required"`
	AddressLine2 string `gorm:"size:255" json:"address_line2"`
	City         string `gorm:"size:120" json:"city" binding:"required"`
	State        string `gorm:"size:120" json:"state" binding:"required"`
	Pincode      string `gorm:"size:16" json:"pincode" binding:"required"`
	Country      string `gorm:"size:120" json:"country" binding:"required"`
}

type Order struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	TrackingID       string             `gorm:"size:20;uniqueIndex;not null" json:"tracking_id"`
	CustomerName     string             `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail    string             `gorm:"size:255;index;not null" json:"customer_email"`
	CustomerPhone    string             `gorm:"size:32" json:"customer_phone"`
	ShippingAddress  ShippingAddress    `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	Items            []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal         int64              `gorm:"not null" json:"subtotal"`
	ShippingCost     int64              `gorm:"not null" json:"shipping_cost"`
	Tax              int64              `gorm:"not null" json:"tax"`
	Discount         int64              `gorm:"not null" json:"discount"`
	Total            int64              `gorm:"not null" json:"total"`
	Status           OrderStatus        `gorm:"size:20;index;default:'PENDING'" json:"status"`
	PaymentStatus    PaymentStatus      `gorm:"size:20;default:'PENDING'" json:"payment_status"`
	StatusHistory    []OrderStatusEntry `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history"`
	GatewayOrderID   string             `gorm:"size:128" json:"gateway_order_id,omitempty"`
	GatewayPaymentID string             `gorm:"size:128" json:"gateway_payment_id,omitempty"`
	GatewaySignature string             `gorm:"size:256" json:"gateway_signature,omitempty"`
	TrackingNumber   string             `gorm:"size:64" json:"tracking_number,omitempty"`
	Notes            string             `gorm:"type:text" json:"notes,omitempty"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
	ShippedAt        *time.Time         `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// OrderItem fige le produit au moment de l'achat : les commandes passées
// restent intactes même si le produit change de prix ou disparaît
type OrderItem struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string `gorm:"size:36;index;not null" json:"order_id"`
	ProductID string `gorm:"size:36;not null" json:"product_id"`
	Name      string `gorm:"size:200;not null" json:"name"`
	SKU       string `gorm:"size:64" json:"sku"`
	Price     int64  `gorm:"not null" json:"price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	Total     int64  `gorm:"not null" json:"total"`
}

// OrderStatusEntry : journal append-only, jamais modifié ni réordonné
type OrderStatusEntry struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string      `gorm:"size:36;index;not null" json:"-"`
	Status    OrderStatus `gorm:"size:20;not null" json:"status"`
	Note      string      `gorm:"size:500" json:"note,omitempty"`
	CreatedAt time.Time   `json:"timestamp"`
}
