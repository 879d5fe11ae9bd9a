package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category groups products; an optional parent builds a tree of
// unenforced depth
type Category struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	DisplayOrder int            `json:"display_order" gorm:"default:0"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	ParentID     *uint          `json:"parent_id,omitempty"`
	Parent       *Category      `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeSave hook to standardize category names
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}
