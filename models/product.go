package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Product represents a seafood item in the catalog
type Product struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Slug            string          `gorm:"uniqueIndex;not null" json:"slug"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	OriginalPrice   float64         `json:"original_price"`
	DiscountPercent int             `json:"discount_percent"`
	Images          []ProductImage  `gorm:"foreignKey:ProductID" json:"images"`
	CategoryID      uint            `json:"category_id"`
	Category        Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants        []Variant       `gorm:"foreignKey:ProductID" json:"variants"`
	WeightOptions   []WeightOption  `gorm:"foreignKey:ProductID" json:"weight_options"`
	SoldCount       int             `json:"sold_count" gorm:"default:0"`
	FlashSalePrice  float64         `gorm:"-" json:"flash_sale_price,omitempty"`
	InStock         bool            `json:"in_stock" gorm:"default:true"`
	Tags            string          `json:"tags"` // comma separated
	Unit            string          `json:"unit"` // kg, con, hộp...
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ProductImage is one entry of a product's ordered image list
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `json:"position"`
}

// Variant is a named sub-SKU with its own price, e.g. package size
type Variant struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `json:"price"`
	InStock   bool    `json:"in_stock" gorm:"default:true"`
}

// WeightOption multiplies the resolved price, e.g. nửa ký = 0.5
type WeightOption struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ProductID       uint    `gorm:"index" json:"product_id"`
	Name            string  `gorm:"not null" json:"name"`
	PriceMultiplier float64 `json:"price_multiplier" gorm:"default:1"`
}

// BeforeSave keeps DiscountPercent consistent with the two price fields
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.OriginalPrice > p.Price && p.OriginalPrice > 0 {
		p.DiscountPercent = int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
	} else {
		p.DiscountPercent = 0
	}
	return nil
}
