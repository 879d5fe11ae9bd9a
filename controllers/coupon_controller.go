package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// GetMyCoupons lists the authenticated user's coupons plus any public
// ones. GET /api/coupons
func GetMyCoupons(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("GetMyCoupons called for user: %d", user.ID)

	var coupons []models.Coupon
	if err := config.DB.
		Where("user_id = ? OR user_id IS NULL", user.ID).
		Order("created_at DESC").
		Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	now := time.Now()
	usable := make([]models.Coupon, 0, len(coupons))
	expired := make([]models.Coupon, 0)
	for _, coupon := range coupons {
		if coupon.Usable(now) {
			usable = append(usable, coupon)
		} else {
			expired = append(expired, coupon)
		}
	}

	utils.Success(c, "Coupons retrieved successfully", gin.H{
		"usable":  usable,
		"expired": expired,
	})
}

// GetMembership reports the authenticated user's tier and progress to
// the next one. GET /api/membership
func GetMembership(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("GetMembership called for user: %d", user.ID)

	remaining, percent := utils.TierProgress(user.TotalSpent)
	next := utils.NextTier(user.TotalSpent)

	resp := gin.H{
		"total_spent": user.TotalSpent,
		"tier_level":  user.TierLevel,
		"tier_name":   utils.TierName(user.TierLevel),
		"progress": gin.H{
			"remaining": remaining,
			"percent":   percent,
		},
		"tiers": utils.TierRules,
	}
	if next != nil {
		resp["next_tier"] = next
	}

	utils.Success(c, "Membership retrieved successfully", resp)
}

// GetTiers exposes the tier table publicly. GET /api/tiers
func GetTiers(c *gin.Context) {
	utils.Success(c, "Tiers retrieved successfully", gin.H{"tiers": utils.TierRules})
}
