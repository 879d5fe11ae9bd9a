package utils

import (
	"math"
	"time"

	"github.com/dangqh/seafresh/models"
)

// ResolvedPrice is the outcome of unit price resolution for one cart line
type ResolvedPrice struct {
	UnitPrice        float64
	VariantName      string
	WeightOptionName string
}

// ResolveUnitPrice resolves the unit price for a product following the
// precedence: flash-sale price substitutes for the base price, an
// explicit variant overrides it, and a weight option multiplies the
// result. Zero ids mean "not selected"; unknown ids fall through to
// the level below.
func ResolveUnitPrice(product *models.Product, variantID, weightOptionID uint, flashSalePrice float64) ResolvedPrice {
	resolved := ResolvedPrice{UnitPrice: product.Price}

	if flashSalePrice > 0 {
		resolved.UnitPrice = flashSalePrice
	}

	if variantID != 0 {
		for _, v := range product.Variants {
			if v.ID == variantID {
				resolved.UnitPrice = v.Price
				resolved.VariantName = v.Name
				break
			}
		}
	}

	if weightOptionID != 0 {
		for _, w := range product.WeightOptions {
			if w.ID == weightOptionID {
				resolved.UnitPrice = resolved.UnitPrice * w.PriceMultiplier
				resolved.WeightOptionName = w.Name
				break
			}
		}
	}

	return resolved
}

// HasVariant reports whether the id selects one of the product's
// variants. Callers use it to decide whether the variant price, rather
// than a flash-sale price, will be the effective one.
func HasVariant(product *models.Product, variantID uint) bool {
	if variantID == 0 {
		return false
	}
	for _, v := range product.Variants {
		if v.ID == variantID {
			return true
		}
	}
	return false
}

// ShippingFee returns the flat fee, waived at the free-shipping threshold
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// CouponDiscount computes the discount a coupon grants on a subtotal.
// An unusable coupon or a subtotal below the minimum yields 0: invalid
// coupons never fail the order, they just don't discount it.
func CouponDiscount(coupon *models.Coupon, subtotal float64, now time.Time) float64 {
	if coupon == nil || !coupon.Usable(now) {
		return 0
	}
	if subtotal < coupon.MinOrderValue {
		return 0
	}
	if coupon.Type == models.CouponTypePercent {
		return math.Floor(subtotal * coupon.Value / 100)
	}
	return coupon.Value
}

// OrderTotal combines the parts, floored at zero since a fixed coupon
// can exceed the subtotal
func OrderTotal(subtotal, couponDiscount, shippingFee float64) float64 {
	total := subtotal - couponDiscount + shippingFee
	if total < 0 {
		return 0
	}
	return total
}
