package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon type constants
const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// Coupon status constants
const (
	CouponStatusActive  = "active"
	CouponStatusUsed    = "used"
	CouponStatusExpired = "expired"
)

type Coupon struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"uniqueIndex;not null" json:"code"`
	UserID        *uint          `json:"user_id,omitempty"`
	Type          string         `json:"type"` // fixed or percent
	Value         float64        `json:"value"`
	MinOrderValue float64        `json:"min_order_value"`
	MaxUsage      int            `json:"max_usage" gorm:"default:1"`
	UsedCount     int            `json:"used_count" gorm:"default:0"`
	Status        string         `json:"status" gorm:"default:'active'"`
	TierLevel     float64        `json:"tier_level"` // spend threshold that minted this coupon, 0 for manual
	ExpiresAt     time.Time      `json:"expires_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Usable reports whether the coupon can still be redeemed at the
// given time. Minimum order value is checked separately against the
// cart subtotal.
func (cp *Coupon) Usable(now time.Time) bool {
	if cp.Status != CouponStatusActive {
		return false
	}
	if !cp.ExpiresAt.IsZero() && !now.Before(cp.ExpiresAt) {
		return false
	}
	return cp.UsedCount < cp.MaxUsage
}
