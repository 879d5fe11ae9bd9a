package controllers

import (
	"fmt"
	"time"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdminListOrders returns all orders with optional status, payment
// status and search filters
func AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Order{}).Preload("Items")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("order_number ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "OK", orders, pagination)
}

// AdminGetOrder returns one order by id
func AdminGetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").First(&order, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	utils.Success(c, "OK", order)
}

// UpdateOrderStatusRequest carries the new order status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus moves an order to a new status. Marking an
// order delivered settles it: the product revenue is added to the
// customer's cumulative spend and any membership tier crossed by that
// increase mints its coupon, all in the same transaction.
func AdminUpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("AdminUpdateOrderStatus called")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "status is required", err.Error())
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		utils.BadRequest(c, "Invalid order status", gin.H{"status": req.Status})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	var order models.Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, c.Param("id")).Error; err != nil {
		tx.Rollback()
		utils.NotFound(c, "Order not found")
		return
	}

	if order.Status == models.OrderStatusDelivered && req.Status != models.OrderStatusDelivered {
		tx.Rollback()
		utils.BadRequest(c, "Delivered orders cannot change status", nil)
		return
	}

	settling := req.Status == models.OrderStatusDelivered && order.Status != models.OrderStatusDelivered

	if err := tx.Model(&order).Update("status", req.Status).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update status for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	var minted []models.Coupon
	if settling && order.UserID != nil {
		var err error
		minted, err = settleDeliveredOrder(tx, &order)
		if err != nil {
			tx.Rollback()
			utils.LogError("Failed to settle delivered order %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to update order", nil)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit status update for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %s moved to status %s", order.OrderNumber, req.Status)
	order.Status = req.Status
	utils.Success(c, "Order status updated", gin.H{
		"order":          order,
		"minted_coupons": minted,
	})
}

// settleDeliveredOrder credits the order's product revenue (shipping
// excluded) to the customer and mints one coupon per newly crossed
// spend tier. Tier coupon codes are derived from the threshold and
// user id; a threshold is crossed at most once per user, so the codes
// never collide.
func settleDeliveredOrder(tx *gorm.DB, order *models.Order) ([]models.Coupon, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, *order.UserID).Error; err != nil {
		return nil, err
	}

	previousSpent := user.TotalSpent
	newSpent := previousSpent + order.ProductRevenue()

	crossed := utils.CrossedTiers(previousSpent, newSpent)
	updates := map[string]interface{}{
		"total_spent": newSpent,
		"tier_level":  utils.TierForSpend(newSpent),
	}
	if err := tx.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	minted := make([]models.Coupon, 0, len(crossed))
	for _, rule := range crossed {
		coupon := models.Coupon{
			Code:          fmt.Sprintf("TIER%dU%d", int(rule.Threshold/1000), user.ID),
			UserID:        &user.ID,
			Type:          models.CouponTypeFixed,
			Value:         rule.Discount,
			MinOrderValue: 0,
			MaxUsage:      1,
			Status:        models.CouponStatusActive,
			TierLevel:     rule.Threshold,
			ExpiresAt:     time.Now().AddDate(0, 0, utils.TierCouponValidityDays),
		}
		if err := tx.Create(&coupon).Error; err != nil {
			return nil, err
		}
		utils.LogInfo("Minted tier coupon %s (%s, %.0f) for user %d", coupon.Code, rule.Name, rule.Discount, user.ID)
		minted = append(minted, coupon)
	}

	return minted, nil
}

// UpdatePaymentStatusRequest carries the new payment status
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// AdminUpdatePaymentStatus sets an order's payment status
func AdminUpdatePaymentStatus(c *gin.Context) {
	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "paymentStatus is required", err.Error())
		return
	}
	switch req.PaymentStatus {
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusFailed:
	default:
		utils.BadRequest(c, "Invalid payment status", gin.H{"paymentStatus": req.PaymentStatus})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("payment_status", req.PaymentStatus).Error; err != nil {
		utils.LogError("Failed to update payment status for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to update order", nil)
		return
	}

	utils.LogInfo("Order %s payment status set to %s", order.OrderNumber, req.PaymentStatus)
	utils.Success(c, "Payment status updated", order)
}
