package controllers

import (
	"errors"
	"os"

	"gorm.io/gorm"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/models"
	"github.com/dangqh/seafresh/utils"
)

// EnsureAdminUser creates the back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD on first run. A missing ADMIN_EMAIL skips the step so
// deployments can manage the account themselves.
func EnsureAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		utils.LogInfo("ADMIN_EMAIL not set, skipping admin bootstrap")
		return nil
	}

	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Phone:    os.Getenv("ADMIN_PHONE"),
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Created admin user %s", email)
	return nil
}
