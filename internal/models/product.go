package models

import "time"

type Product struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Slug        string         `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	SalePrice   *int64         `json:"sale_price,omitempty"`
	SKU         string         `gorm:"size:64;uniqueIndex;not null" json:"sku"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	ImageURL    string         `gorm:"size:1024" json:"image_url"`
	ImageURLs   []string       `gorm:"serializer:json" json:"image_urls"`
	CategoryID  string         `gorm:"size:36;index;not null" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	IsFeatured  bool           `gorm:"default:false" json:"is_featured"`
	Metadata    map[string]any `gorm:"serializer:json" json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// UnitPrice retourne le prix effectif : le prix promo gagne s'il est présent
func (p Product) UnitPrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
