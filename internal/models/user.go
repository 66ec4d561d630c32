// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered user in the Bloglist application.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Name         string `json:"name"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Blogs are the blogs this user created. The user_id foreign key on the
	// blog row is the owner linkage; it is written in the same transaction
	// as the blog itself.
	Blogs     []Blog    `gorm:"foreignKey:UserID" json:"blogs,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
