package utils

// Application constants
const (
	// Application name
	AppName = "SeaFresh"

	// Order number prefix, from "đơn hàng"
	OrderNumberPrefix = "DH"

	// Flat shipping fee in VND
	FlatShippingFee = 40000

	// Orders at or above this subtotal ship free
	FreeShippingThreshold = 500000

	// Default pagination page size
	DefaultPageSize = 10

	// Maximum pagination page size
	MaxPageSize = 100

	// How many times order creation retries a colliding order number
	OrderNumberMaxAttempts = 5

	// Days until a tier-issued coupon expires
	TierCouponValidityDays = 30

	// Top-product rows in the statistics response
	TopProductLimit = 5
)
