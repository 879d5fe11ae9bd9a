package models

import (
	"time"

	"gorm.io/gorm"
)

// FlashSale is a time-boxed price/quantity override for a set of
// products
type FlashSale struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Name      string             `gorm:"not null" json:"name"`
	StartTime time.Time          `json:"start_time"`
	EndTime   time.Time          `json:"end_time"`
	Products  []FlashSaleProduct `gorm:"foreignKey:FlashSaleID" json:"products"`
	IsActive  bool               `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`
}

type FlashSaleProduct struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	FlashSaleID   uint    `gorm:"index" json:"flash_sale_id"`
	ProductID     uint    `gorm:"index" json:"product_id"`
	Product       Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	SalePrice     float64 `json:"sale_price"`
	OriginalPrice float64 `json:"original_price"`
	Quantity      int     `json:"quantity"`
	SoldCount     int     `json:"sold_count" gorm:"default:0"`
}

// IsRunning reports whether the sale window is open at the given time.
// The window is inclusive of both its start and its end instant.
func (fs *FlashSale) IsRunning(now time.Time) bool {
	return fs.IsActive && !now.Before(fs.StartTime) && !now.After(fs.EndTime)
}

// Remaining returns the quantity still available for sale
func (fp *FlashSaleProduct) Remaining() int {
	if r := fp.Quantity - fp.SoldCount; r > 0 {
		return r
	}
	return 0
}
