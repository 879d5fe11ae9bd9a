package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// AdminListUsers handles GET /api/admin/users with optional search over
// name, email and phone
func AdminListUsers(c *gin.Context) {
	utils.LogInfo("AdminListUsers called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{}).Where("role != ?", models.RoleAdmin)
	if search := c.Query("search"); search != "" {
		term := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", term, term, term)
	}
	if blocked := c.Query("blocked"); blocked == "true" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", gin.H{"users": users}, pagination)
}

// AdminGetUser handles GET /api/admin/users/:id, including the user's
// order history summary
func AdminGetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy người dùng")
		return
	}

	var orderCount int64
	config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orderCount)

	utils.Success(c, "User retrieved successfully", gin.H{
		"user":        user,
		"order_count": orderCount,
		"tier_name":   utils.TierName(user.TierLevel),
	})
}

// AdminSetUserBlocked handles PUT /api/admin/users/:id/block with body
// {"blocked": bool}. A blocked user fails auth on the next request.
func AdminSetUserBlocked(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "blocked field is required", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy người dùng")
		return
	}

	if user.IsAdmin() {
		utils.Forbidden(c, "Cannot block an admin account")
		return
	}

	user.IsActive = !*req.Blocked
	if err := config.DB.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		utils.LogError("Failed to update user block state: %v", err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	utils.LogInfo("User %d block state set to %v", user.ID, *req.Blocked)
	utils.Success(c, "User updated successfully", gin.H{"user": user})
}
