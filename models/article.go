package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is a content/news entry, e.g. recipes or sourcing stories
type Article struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Summary     string         `json:"summary"`
	Content     string         `json:"content"`
	Image       string         `json:"image"`
	IsPublished bool           `json:"is_published" gorm:"default:false"`
	Views       int            `json:"views" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
