package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
	"github.com/gin-gonic/gin"
)

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleLogin redirects to the Google consent screen
func GoogleLogin(c *gin.Context) {
	url := config.GoogleOAuthConfig.AuthCodeURL("state")
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the OAuth code, upserts the account and
// returns a JWT
func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "No code provided", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c, code)
	if err != nil {
		utils.InternalServerError(c, "Failed to exchange token", err.Error())
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.InternalServerError(c, "Failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.InternalServerError(c, "Failed to read response", err.Error())
		return
	}

	var info GoogleUserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		utils.InternalServerError(c, "Failed to parse user info", err.Error())
		return
	}
	if info.Email == "" {
		utils.BadRequest(c, "Google account has no email", nil)
		return
	}

	var user models.User
	err = config.DB.Where("google_id = ? OR email = ?", info.ID, info.Email).First(&user).Error
	if err != nil {
		user = models.User{
			Name:     info.Name,
			Email:    info.Email,
			GoogleID: info.ID,
			Role:     models.RoleUser,
			IsActive: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			utils.LogError("Failed to create Google user %s: %v", info.Email, err)
			utils.InternalServerError(c, "Failed to create user", nil)
			return
		}
		utils.LogInfo("Created user %d from Google account %s", user.ID, info.Email)
	} else if user.GoogleID == "" {
		config.DB.Model(&user).UpdateColumn("google_id", info.ID)
	}

	if !user.IsActive {
		utils.Forbidden(c, "Tài khoản đã bị khóa")
		return
	}

	jwtToken, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.Success(c, "Đăng nhập thành công", gin.H{
		"token": jwtToken,
		"user":  user,
	})
}
