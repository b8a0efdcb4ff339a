package models

import (
	"time"
)

// Vehicle is a user-owned vehicle. Make/model/year may come from the static
// catalog or be free-text custom values; IsCustom records which input mode
// produced the row so the edit form can default to the right mode without
// guessing from catalog membership.
type Vehicle struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Make         string      `gorm:"not null" json:"make"`
	Model        string      `gorm:"not null" json:"model"`
	Year         int         `gorm:"not null" json:"year"`
	LicensePlate string      `gorm:"not null" json:"license_plate"`
	IsCustom     bool        `gorm:"not null;default:false" json:"is_custom"`
	OwnerID      uint        `gorm:"not null;index" json:"owner_id"`
	Owner        User        `gorm:"foreignKey:OwnerID" json:"-"`
	Logs         []RepairLog `gorm:"foreignKey:VehicleID" json:"logs,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
