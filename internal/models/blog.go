// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Blog represents a blog entry in the Bloglist application.
type Blog struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Author string `json:"author"`
	URL    string `gorm:"not null" json:"url"`
	Likes  int    `gorm:"not null;default:0" json:"likes"`
	// UserID is the owner, set once at creation and never reassigned.
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Comments  []Comment `gorm:"foreignKey:BlogID" json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Blog) TableName() string {
	return "blogs"
}
