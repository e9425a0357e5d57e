package domain

import "time"

type Product struct {
	ID           uint         `gorm:"primaryKey" json:"id,omitempty"`
	Name         string       `gorm:"size:180;not null" json:"name"`
	AlphaCode    string       `gorm:"size:60" json:"alphaCode,omitempty"`
	SellValue    float64      `gorm:"type:decimal(12,2)" json:"sellValue"`
	CostValue    float64      `gorm:"type:decimal(12,2);default:0" json:"costValue,omitempty"`
	EANCode      string       `gorm:"size:20;index" json:"eanCode,omitempty"`
	MinimumStock int          `gorm:"default:0" json:"minimumStock,omitempty"`
	HasVariant   bool         `gorm:"default:false" json:"hasVariant"`
	CategoryID   uint         `gorm:"index" json:"categoryId,omitempty"`
	Category     *CategoryRef `gorm:"type:jsonb;serializer:json" json:"category,omitempty"`
	Variants     []Variant    `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	CreatedAt    time.Time    `json:"-"`
	UpdatedAt    time.Time    `json:"-"`
}

// CategoryRef is the denormalized category snapshot carried by a product.
// It is a value copy and may diverge from the category row it came from.
type CategoryRef struct {
	ID          uint   `json:"id,omitempty"`
	Description string `json:"description"`
}

type Variant struct {
	ID        string    `gorm:"size:40;primaryKey" json:"id,omitempty"`
	ProductID uint      `gorm:"index" json:"-"`
	Name      string    `gorm:"size:120" json:"name"`
	SKU       string    `gorm:"size:100;index" json:"sku"`
	SellValue float64   `gorm:"type:decimal(12,2)" json:"sellValue"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id,omitempty"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	ViewMode    string    `gorm:"size:20" json:"viewMode,omitempty"`
	Text        string    `gorm:"size:255" json:"text,omitempty"`
	Color       string    `gorm:"size:20" json:"color,omitempty"`
	ShowCatalog bool      `gorm:"default:false" json:"showCatalog,omitempty"`
	Archived    bool      `gorm:"default:false;index" json:"archived,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
