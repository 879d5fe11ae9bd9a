package controllers

import (
	"strings"
	"time"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a customer account
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Vui lòng điền đầy đủ thông tin", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(req.Email) {
		utils.BadRequest(c, "Email không hợp lệ", nil)
		return
	}
	if !utils.ValidatePhone(req.Phone) {
		utils.BadRequest(c, "Số điện thoại không hợp lệ", nil)
		return
	}
	if len(req.Password) < 8 {
		utils.BadRequest(c, "Mật khẩu phải có ít nhất 8 ký tự", nil)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).Error; err == nil {
		utils.Conflict(c, "Email hoặc số điện thoại đã được đăng ký", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Address:  req.Address,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// a concurrent registration can slip past the lookup above and
		// hit the unique index instead
		if isDuplicateKeyError(err) {
			utils.Conflict(c, "Email hoặc số điện thoại đã được đăng ký", nil)
			return
		}
		utils.LogError("Failed to create user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	utils.LogInfo("Registered user %d (%s)", user.ID, user.Email)
	utils.Created(c, "Đăng ký thành công", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login authenticates with email and password
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Vui lòng nhập email và mật khẩu", err.Error())
		return
	}

	var user models.User
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.Unauthorized(c, "Email hoặc mật khẩu không đúng")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Failed login attempt for %s", email)
		utils.Unauthorized(c, "Email hoặc mật khẩu không đúng")
		return
	}
	if !user.IsActive {
		utils.Forbidden(c, "Tài khoản đã bị khóa")
		return
	}

	config.DB.Model(&user).UpdateColumn("last_login_at", time.Now())

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Đã xảy ra lỗi, vui lòng thử lại sau", nil)
		return
	}

	utils.LogInfo("User %d logged in", user.ID)
	utils.Success(c, "Đăng nhập thành công", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated account
func Me(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Vui lòng đăng nhập để tiếp tục")
		return
	}
	user := userVal.(models.User)

	remaining, percent := utils.TierProgress(user.TotalSpent)
	utils.Success(c, "OK", gin.H{
		"user":      user,
		"tier_name": utils.TierName(user.TierLevel),
		"tier_progress": gin.H{
			"remaining": remaining,
			"percent":   percent,
		},
	})
}
