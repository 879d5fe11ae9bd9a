package controllers

import (
	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns a paginated order list. Filter precedence:
// authenticated user first, then phone, then order number. With no
// usable filter the result is empty, never the whole table.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Order{}).Preload("Items")

	switch {
	case hasContextUser(c):
		user := c.MustGet("user").(models.User)
		query = query.Where("user_id = ?", user.ID)
		utils.LogDebug("Listing orders for user %d", user.ID)
	case c.Query("phone") != "":
		query = query.Where("customer_phone = ?", c.Query("phone"))
	case c.Query("orderNumber") != "":
		query = query.Where("order_number = ?", c.Query("orderNumber"))
	default:
		// No scoping filter: answer with an empty page instead of
		// exposing every order.
		pagination.SetTotal(0)
		utils.SuccessWithPagination(c, "OK", []models.Order{}, pagination)
		return
	}

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			utils.BadRequest(c, "Trạng thái đơn hàng không hợp lệ", nil)
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	utils.SuccessWithPagination(c, "OK", orders, pagination)
}

// TrackOrder returns one order by order number. Anonymous callers must
// also supply the matching customer phone; owners just need their token.
func TrackOrder(c *gin.Context) {
	utils.LogInfo("TrackOrder called")

	orderNumber := c.Param("orderNumber")
	var order models.Order
	if err := config.DB.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy đơn hàng")
		return
	}

	if hasContextUser(c) {
		user := c.MustGet("user").(models.User)
		if order.UserID != nil && *order.UserID == user.ID {
			utils.Success(c, "OK", order)
			return
		}
	}
	if phone := c.Query("phone"); phone != "" && phone == order.CustomerPhone {
		utils.Success(c, "OK", order)
		return
	}

	// Treat a failed ownership check like a missing order so order
	// numbers cannot be enumerated.
	utils.NotFound(c, "Không tìm thấy đơn hàng")
}

func hasContextUser(c *gin.Context) bool {
	_, exists := c.Get("user")
	return exists
}
