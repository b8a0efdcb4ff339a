package models

import (
	"time"
)

// RepairLog is a single maintenance entry for a vehicle. Mileage is optional;
// listings are ordered by Date descending.
type RepairLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null" json:"date"`
	Mileage     *int      `json:"mileage,omitempty"`
	Description string    `gorm:"not null" json:"description"`
	VehicleID   uint      `gorm:"not null;index" json:"vehicle_id"`
	Vehicle     Vehicle   `gorm:"foreignKey:VehicleID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
