// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password column stores a bcrypt
// hash, never the submitted plaintext.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Vehicles  []Vehicle `gorm:"foreignKey:OwnerID" json:"vehicles,omitempty"`
}
