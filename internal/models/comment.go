// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment appended to a blog. Comments are append-only:
// they are never edited or removed individually, and listing order follows
// insertion order.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
