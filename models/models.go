package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or administrator account
type User struct {
	gorm.Model
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	// Google signups and the bootstrapped admin have no phone; the
	// partial index keeps those empty values from colliding.
	Phone       string    `gorm:"uniqueIndex:idx_users_phone,where:phone <> ''" json:"phone"`
	Password    string    `json:"-"`
	Address     string    `json:"address"`
	Role        string    `json:"role" gorm:"default:'user'"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	TotalSpent  float64   `json:"total_spent" gorm:"default:0"`
	TierLevel   float64   `json:"tier_level" gorm:"default:0"`
	GoogleID    string    `gorm:"default:null" json:"-"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// IsAdmin reports whether the account has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
