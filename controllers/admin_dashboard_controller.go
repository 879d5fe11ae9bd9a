package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetDashboard returns the back-office landing numbers: lifetime
// totals, today's activity and the orders awaiting action.
// GET /api/admin/dashboard
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")

	var totalOrders, pendingOrders, totalProducts, totalUsers int64
	if err := config.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to build dashboard", nil)
		return
	}
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)
	config.DB.Model(&models.Product{}).Count(&totalProducts)
	config.DB.Model(&models.User{}).Where("role != ?", models.RoleAdmin).Count(&totalUsers)

	var totalRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount - shipping_fee), 0)").
		Scan(&totalRevenue)

	today, _, err := PeriodRange("day", time.Now())
	if err != nil {
		utils.InternalServerError(c, "Failed to build dashboard", nil)
		return
	}

	var todayOrders int64
	config.DB.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", today.Start, today.End).
		Count(&todayOrders)

	var todayRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", models.OrderStatusDelivered, today.Start, today.End).
		Select("COALESCE(SUM(total_amount - shipping_fee), 0)").
		Scan(&todayRevenue)

	var recentOrders []models.Order
	if err := config.DB.Preload("Items").
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		utils.LogError("Failed to fetch recent orders: %v", err)
		recentOrders = nil
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"totals": gin.H{
			"orders":         totalOrders,
			"pending_orders": pendingOrders,
			"products":       totalProducts,
			"users":          totalUsers,
			"revenue":        totalRevenue,
		},
		"today": gin.H{
			"orders":  todayOrders,
			"revenue": todayRevenue,
		},
		"recent_orders": recentOrders,
	})
}
