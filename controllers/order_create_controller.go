package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderItemRequest is one requested cart line
type OrderItemRequest struct {
	ProductID      uint `json:"productId" binding:"required"`
	VariantID      uint `json:"variantId"`
	WeightOptionID uint `json:"weightOptionId"`
	Quantity       int  `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerPhone   string             `json:"customerPhone" binding:"required"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerAddress string             `json:"customerAddress" binding:"required"`
	CustomerNote    string             `json:"customerNote"`
	DeliveryDate    string             `json:"deliveryDate"`
	DeliveryTime    string             `json:"deliveryTime"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required"`
	Items           []OrderItemRequest `json:"items"`
	CouponCode      string             `json:"couponCode"`
}

// CreateOrder builds and persists an order from a client-supplied item
// list. Product lookups, sold-count increments, flash-sale bookkeeping,
// coupon redemption and the order insert all run in one transaction.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập để đặt hàng")
		return
	}
	user := userVal.(models.User)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Vui lòng điền đầy đủ thông tin đặt hàng", err.Error())
		return
	}

	if len(req.Items) == 0 {
		utils.BadRequest(c, "Giỏ hàng trống", nil)
		return
	}
	if !utils.ValidatePhone(req.CustomerPhone) {
		utils.BadRequest(c, "Số điện thoại không hợp lệ", nil)
		return
	}
	paymentMethod := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if paymentMethod != models.PaymentMethodCOD && paymentMethod != models.PaymentMethodOnline {
		utils.BadRequest(c, "Phương thức thanh toán không hợp lệ", nil)
		return
	}

	now := time.Now()
	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user %d: %v", user.ID, tx.Error)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Variants").
			Preload("WeightOptions").
			Preload("Images").
			First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			utils.LogError("Product %d not found for user %d: %v", line.ProductID, user.ID, err)
			utils.BadRequest(c, fmt.Sprintf("Không tìm thấy sản phẩm với mã %d", line.ProductID), nil)
			return
		}

		// A matching variant sells at its own price, so its quantity
		// must not be booked against the flash-sale allotment.
		flashPrice := 0.0
		if !utils.HasVariant(&product, line.VariantID) {
			flashPrice = claimFlashSalePrice(tx, product.ID, line.Quantity, now)
		}
		resolved := utils.ResolveUnitPrice(&product, line.VariantID, line.WeightOptionID, flashPrice)
		subtotal += resolved.UnitPrice * float64(line.Quantity)

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0].URL
		}
		items = append(items, models.OrderItem{
			ProductID:        product.ID,
			Name:             product.Name,
			Image:            image,
			VariantName:      resolved.VariantName,
			WeightOptionName: resolved.WeightOptionName,
			Quantity:         line.Quantity,
			Price:            resolved.UnitPrice,
		})

		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).
			UpdateColumn("sold_count", gorm.Expr("sold_count + ?", line.Quantity)).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to update sold count for product %d: %v", product.ID, err)
			utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
			return
		}
	}

	shippingFee := utils.ShippingFee(subtotal)

	couponDiscount := 0.0
	appliedCoupon := ""
	if req.CouponCode != "" {
		couponDiscount, appliedCoupon = redeemCoupon(tx, &user, req.CouponCode, subtotal, now)
	}

	order := models.Order{
		UserID:          &user.ID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CustomerNote:    req.CustomerNote,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
		Items:           items,
		Subtotal:        subtotal,
		CouponCode:      appliedCoupon,
		CouponDiscount:  couponDiscount,
		ShippingFee:     shippingFee,
		TotalAmount:     utils.OrderTotal(subtotal, couponDiscount, shippingFee),
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		Status:          models.OrderStatusPending,
	}

	if err := insertOrderWithFreshNumber(tx, &order, now); err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	utils.LogInfo("Created order %s (id %d) for user %d, total %.0f", order.OrderNumber, order.ID, user.ID, order.TotalAmount)

	// The confirmation mail must not delay or fail the order.
	go func(o models.Order) {
		if err := utils.SendOrderConfirmation(&o); err != nil {
			utils.LogError("Order confirmation mail for %s failed: %v", o.OrderNumber, err)
		}
	}(order)

	utils.Created(c, "Đặt hàng thành công", order)
}

// claimFlashSalePrice returns the running flash-sale price for a
// product and books the claimed quantity, or 0 when no usable sale
// entry exists. A sale entry without enough remaining quantity does
// not apply.
func claimFlashSalePrice(tx *gorm.DB, productID uint, quantity int, now time.Time) float64 {
	var entry models.FlashSaleProduct
	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "flash_sale_products"}}).
		Joins("JOIN flash_sales ON flash_sales.id = flash_sale_products.flash_sale_id").
		Where("flash_sale_products.product_id = ?", productID).
		Where("flash_sales.is_active = ?", true).
		Where("flash_sales.start_time <= ? AND flash_sales.end_time >= ?", now, now).
		Where("flash_sales.deleted_at IS NULL").
		First(&entry).Error
	if err != nil {
		return 0
	}
	if entry.Remaining() < quantity {
		return 0
	}

	if err := tx.Model(&models.FlashSaleProduct{}).Where("id = ?", entry.ID).
		UpdateColumn("sold_count", gorm.Expr("sold_count + ?", quantity)).Error; err != nil {
		utils.LogError("Failed to update flash sale sold count for entry %d: %v", entry.ID, err)
		return 0
	}
	return entry.SalePrice
}

// redeemCoupon applies a coupon code to the subtotal. An invalid,
// expired, exhausted or foreign coupon is ignored rather than failing
// the order; only a successfully applied code gets its usage counted.
func redeemCoupon(tx *gorm.DB, user *models.User, code string, subtotal float64, now time.Time) (float64, string) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var coupon models.Coupon
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("UPPER(code) = ?", code).First(&coupon).Error; err != nil {
		utils.LogInfo("Coupon %s not found, order proceeds without discount", code)
		return 0, ""
	}
	if coupon.UserID != nil && *coupon.UserID != user.ID {
		utils.LogInfo("Coupon %s belongs to another user, ignored for user %d", code, user.ID)
		return 0, ""
	}

	discount := utils.CouponDiscount(&coupon, subtotal, now)
	if discount == 0 {
		utils.LogInfo("Coupon %s not applicable (subtotal %.0f), order proceeds without discount", code, subtotal)
		return 0, ""
	}

	updates := map[string]interface{}{
		"used_count": gorm.Expr("used_count + 1"),
	}
	if coupon.UsedCount+1 >= coupon.MaxUsage {
		updates["status"] = models.CouponStatusUsed
	}
	if err := tx.Model(&models.Coupon{}).Where("id = ?", coupon.ID).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update usage for coupon %s: %v", code, err)
		return 0, ""
	}

	return discount, coupon.Code
}

// insertOrderWithFreshNumber inserts the order, regenerating the random
// order-number suffix when the unique index rejects a collision. Each
// attempt runs inside a savepoint so a failed insert does not poison
// the surrounding transaction.
func insertOrderWithFreshNumber(tx *gorm.DB, order *models.Order, now time.Time) error {
	var lastErr error
	for attempt := 0; attempt < utils.OrderNumberMaxAttempts; attempt++ {
		order.OrderNumber = utils.GenerateOrderNumber(now)

		if err := tx.SavePoint("order_insert").Error; err != nil {
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			lastErr = err
			if isDuplicateKeyError(err) {
				utils.LogInfo("Order number %s collided, retrying", order.OrderNumber)
				if rbErr := tx.RollbackTo("order_insert").Error; rbErr != nil {
					return rbErr
				}
				order.ID = 0
				for i := range order.Items {
					order.Items[i].ID = 0
					order.Items[i].OrderID = 0
				}
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("could not allocate a unique order number after %d attempts: %w", utils.OrderNumberMaxAttempts, lastErr)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "SQLSTATE 23505")
}
