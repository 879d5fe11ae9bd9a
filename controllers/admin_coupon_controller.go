package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// CouponRequest is the admin create/update payload
type CouponRequest struct {
	Code          string  `json:"code" binding:"required"`
	UserID        *uint   `json:"userId"`
	Type          string  `json:"type" binding:"required"`
	Value         float64 `json:"value" binding:"required"`
	MinOrderValue float64 `json:"minOrderValue"`
	MaxUsage      int     `json:"maxUsage"`
	ExpiresAt     string  `json:"expiresAt"` // YYYY-MM-DD
}

func (r *CouponRequest) validate() (time.Time, string) {
	if r.Type != models.CouponTypeFixed && r.Type != models.CouponTypePercent {
		return time.Time{}, "Loại mã giảm giá phải là fixed hoặc percent"
	}
	if r.Value <= 0 {
		return time.Time{}, "Giá trị mã giảm giá phải lớn hơn 0"
	}
	if r.Type == models.CouponTypePercent && r.Value > 100 {
		return time.Time{}, "Mã giảm giá phần trăm không được vượt quá 100"
	}
	var expiresAt time.Time
	if r.ExpiresAt != "" {
		parsed, err := time.ParseInLocation("2006-01-02", r.ExpiresAt, time.Local)
		if err != nil {
			return time.Time{}, "Ngày hết hạn phải có định dạng YYYY-MM-DD"
		}
		expiresAt = parsed.AddDate(0, 0, 1) // valid through end of that day
	}
	return expiresAt, ""
}

// AdminListCoupons handles GET /api/admin/coupons
func AdminListCoupons(c *gin.Context) {
	utils.LogInfo("AdminListCoupons called")

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Coupon{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("code ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}
	pagination.SetTotal(total)

	var coupons []models.Coupon
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&coupons).Error; err != nil {
		utils.LogError("Failed to fetch coupons: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	utils.SuccessWithPagination(c, "Coupons retrieved successfully", gin.H{"coupons": coupons}, pagination)
}

// CreateCoupon handles POST /api/admin/coupons
func CreateCoupon(c *gin.Context) {
	utils.LogInfo("CreateCoupon called")

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu mã giảm giá không hợp lệ", err.Error())
		return
	}

	expiresAt, msg := req.validate()
	if msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	var existing models.Coupon
	if err := config.DB.Where("UPPER(code) = ?", code).First(&existing).Error; err == nil {
		utils.Conflict(c, "Mã giảm giá đã tồn tại", nil)
		return
	}

	if req.UserID != nil {
		var user models.User
		if err := config.DB.First(&user, *req.UserID).Error; err != nil {
			utils.BadRequest(c, "Người dùng không tồn tại", nil)
			return
		}
	}

	maxUsage := req.MaxUsage
	if maxUsage <= 0 {
		maxUsage = 1
	}

	coupon := models.Coupon{
		Code:          code,
		UserID:        req.UserID,
		Type:          req.Type,
		Value:         req.Value,
		MinOrderValue: req.MinOrderValue,
		MaxUsage:      maxUsage,
		Status:        models.CouponStatusActive,
		ExpiresAt:     expiresAt,
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		utils.LogError("Failed to create coupon: %v", err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	utils.LogInfo("Coupon created: %s", coupon.Code)
	utils.Created(c, "Coupon created successfully", gin.H{"coupon": coupon})
}

// UpdateCoupon handles PUT /api/admin/coupons/:id. The code itself is
// immutable once issued.
func UpdateCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Dữ liệu mã giảm giá không hợp lệ", err.Error())
		return
	}

	expiresAt, msg := req.validate()
	if msg != "" {
		utils.BadRequest(c, msg, nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, uint(couponID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy mã giảm giá")
		return
	}

	coupon.Type = req.Type
	coupon.Value = req.Value
	coupon.MinOrderValue = req.MinOrderValue
	if req.MaxUsage > 0 {
		coupon.MaxUsage = req.MaxUsage
		if coupon.UsedCount < coupon.MaxUsage && coupon.Status == models.CouponStatusUsed {
			coupon.Status = models.CouponStatusActive
		}
	}
	if !expiresAt.IsZero() {
		coupon.ExpiresAt = expiresAt
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		utils.LogError("Failed to update coupon: %v", err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	utils.Success(c, "Coupon updated successfully", gin.H{"coupon": coupon})
}

// DeleteCoupon handles DELETE /api/admin/coupons/:id
func DeleteCoupon(c *gin.Context) {
	couponID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid coupon ID", nil)
		return
	}

	var coupon models.Coupon
	if err := config.DB.First(&coupon, uint(couponID)).Error; err != nil {
		utils.NotFound(c, "Không tìm thấy mã giảm giá")
		return
	}

	if err := config.DB.Delete(&coupon).Error; err != nil {
		utils.LogError("Failed to delete coupon: %v", err)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}

	utils.Success(c, "Coupon deleted successfully", nil)
}
