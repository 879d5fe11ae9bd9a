package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipping  = "shipping"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment method constants
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// Payment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          *uint       `json:"user_id,omitempty"`
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"not null" json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	CustomerNote    string      `json:"customer_note"`
	DeliveryDate    string      `json:"delivery_date"`
	DeliveryTime    string      `json:"delivery_time"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Subtotal        float64     `json:"subtotal"`
	CouponCode      string      `json:"coupon_code"`
	CouponDiscount  float64     `json:"coupon_discount"`
	ShippingFee     float64     `json:"shipping_fee"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status" gorm:"default:'pending'"`
	PaymentRef      string      `json:"payment_ref,omitempty"` // gateway order id for online payments
	Status          string      `json:"status" gorm:"default:'pending'"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a point-in-time snapshot of a purchased line, immune
// to later product changes
type OrderItem struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	OrderID          uint    `gorm:"index" json:"order_id"`
	ProductID        uint    `json:"product_id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	VariantName      string  `json:"variant_name,omitempty"`
	WeightOptionName string  `json:"weight_option_name,omitempty"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"` // resolved unit price at order time
}

// ProductRevenue is the order's contribution to product revenue,
// shipping excluded
func (o *Order) ProductRevenue() float64 {
	return o.TotalAmount - o.ShippingFee
}

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipping,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
