package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dangqh/seafresh/models"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:    1,
		Name:  "Tôm hùm Alaska",
		Price: 100000,
		Variants: []models.Variant{
			{ID: 10, Name: "Loại 1", Price: 150000},
			{ID: 11, Name: "Loại 2", Price: 50000},
		},
		WeightOptions: []models.WeightOption{
			{ID: 20, Name: "Nửa ký", PriceMultiplier: 0.5},
			{ID: 21, Name: "Một ký", PriceMultiplier: 1},
		},
	}
}

func TestResolveUnitPriceBase(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 0, 0, 0)
	assert.Equal(t, 100000.0, resolved.UnitPrice)
	assert.Empty(t, resolved.VariantName)
	assert.Empty(t, resolved.WeightOptionName)
}

func TestResolveUnitPriceVariantOverridesBase(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 10, 0, 0)
	assert.Equal(t, 150000.0, resolved.UnitPrice)
	assert.Equal(t, "Loại 1", resolved.VariantName)
}

func TestResolveUnitPriceWeightMultipliesVariant(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 10, 20, 0)
	assert.Equal(t, 75000.0, resolved.UnitPrice)
	assert.Equal(t, "Loại 1", resolved.VariantName)
	assert.Equal(t, "Nửa ký", resolved.WeightOptionName)
}

func TestResolveUnitPriceWeightMultipliesBase(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 0, 20, 0)
	assert.Equal(t, 50000.0, resolved.UnitPrice)
}

func TestResolveUnitPriceFlashSaleSubstitutesBase(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 0, 0, 80000)
	assert.Equal(t, 80000.0, resolved.UnitPrice)

	// an explicit variant still wins over the sale price
	resolved = ResolveUnitPrice(testProduct(), 11, 0, 80000)
	assert.Equal(t, 50000.0, resolved.UnitPrice)

	// but the weight multiplier applies on top of the sale price
	resolved = ResolveUnitPrice(testProduct(), 0, 20, 80000)
	assert.Equal(t, 40000.0, resolved.UnitPrice)
}

func TestResolveUnitPriceUnknownIDsFallThrough(t *testing.T) {
	resolved := ResolveUnitPrice(testProduct(), 99, 98, 0)
	assert.Equal(t, 100000.0, resolved.UnitPrice)
	assert.Empty(t, resolved.VariantName)
	assert.Empty(t, resolved.WeightOptionName)
}

func TestHasVariant(t *testing.T) {
	product := testProduct()
	assert.True(t, HasVariant(product, 10))
	assert.True(t, HasVariant(product, 11))
	assert.False(t, HasVariant(product, 0))
	assert.False(t, HasVariant(product, 99))
}

func TestShippingFeeThreshold(t *testing.T) {
	assert.Equal(t, 40000.0, ShippingFee(0))
	assert.Equal(t, 40000.0, ShippingFee(250000))
	assert.Equal(t, 40000.0, ShippingFee(499999))
	assert.Equal(t, 0.0, ShippingFee(500000))
	assert.Equal(t, 0.0, ShippingFee(600000))
}

func TestCouponDiscountFixed(t *testing.T) {
	coupon := &models.Coupon{
		Type:     models.CouponTypeFixed,
		Value:    20000,
		MaxUsage: 1,
		Status:   models.CouponStatusActive,
	}
	assert.Equal(t, 20000.0, CouponDiscount(coupon, 250000, time.Now()))
}

func TestCouponDiscountPercentFloors(t *testing.T) {
	coupon := &models.Coupon{
		Type:     models.CouponTypePercent,
		Value:    10,
		MaxUsage: 1,
		Status:   models.CouponStatusActive,
	}
	assert.Equal(t, 99.0, CouponDiscount(coupon, 999, time.Now()))
}

func TestCouponDiscountRejections(t *testing.T) {
	now := time.Now()
	base := models.Coupon{
		Type:     models.CouponTypeFixed,
		Value:    20000,
		MaxUsage: 1,
		Status:   models.CouponStatusActive,
	}

	exhausted := base
	exhausted.UsedCount = 1
	assert.Equal(t, 0.0, CouponDiscount(&exhausted, 250000, now))

	expired := base
	expired.ExpiresAt = now.Add(-time.Hour)
	assert.Equal(t, 0.0, CouponDiscount(&expired, 250000, now))

	belowMin := base
	belowMin.MinOrderValue = 300000
	assert.Equal(t, 0.0, CouponDiscount(&belowMin, 250000, now))

	used := base
	used.Status = models.CouponStatusUsed
	assert.Equal(t, 0.0, CouponDiscount(&used, 250000, now))

	assert.Equal(t, 0.0, CouponDiscount(nil, 250000, now))
}

func TestOrderTotalFlooredAtZero(t *testing.T) {
	assert.Equal(t, 0.0, OrderTotal(10000, 100000, 0))
	assert.Equal(t, 30000.0, OrderTotal(50000, 60000, 40000))
}

func TestOrderTotalWorkedExamples(t *testing.T) {
	// two items at 100000 plus one variant line at 50000
	subtotal := 100000.0*2 + 50000.0
	assert.Equal(t, 250000.0, subtotal)

	fee := ShippingFee(subtotal)
	assert.Equal(t, 40000.0, fee)
	assert.Equal(t, 290000.0, OrderTotal(subtotal, 0, fee))

	coupon := &models.Coupon{
		Type:     models.CouponTypeFixed,
		Value:    20000,
		MaxUsage: 1,
		Status:   models.CouponStatusActive,
	}
	discount := CouponDiscount(coupon, subtotal, time.Now())
	assert.Equal(t, 270000.0, OrderTotal(subtotal, discount, fee))

	// above the threshold shipping stays free regardless of coupon
	assert.Equal(t, 0.0, ShippingFee(600000))
	assert.Equal(t, 580000.0, OrderTotal(600000, discount, ShippingFee(600000)))
}
