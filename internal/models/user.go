// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Identity is immutable after
// registration; users are never hard-deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:32;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:32" json:"first_name"`
	LastName  string    `gorm:"size:32" json:"last_name"`
	Email     string    `gorm:"size:64" json:"email"`
	Major     string    `gorm:"size:64" json:"major"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
