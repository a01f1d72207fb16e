package models

import "time"

// TimeRange is a driver's working window on one weekday, stored as "HH:MM"
// strings in the service's local time.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Availability maps weekday abbreviations (Mon..Fri) to an optional working
// window. Absent days mean the driver is off.
type Availability map[string]TimeRange

type Driver struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time    `json:"-"`
	UpdatedAt    time.Time    `json:"-"`
	FirstName    string       `json:"firstName" binding:"required"`
	LastName     string       `json:"lastName" binding:"required"`
	PhoneNumber  string       `json:"phoneNumber"`
	Email        string       `json:"email" binding:"required,email"`
	StartDate    string       `json:"startDate"`
	Admin        bool         `json:"admin"`
	Availability Availability `gorm:"serializer:json" json:"availability,omitempty"`
	VehicleID    string       `gorm:"index" json:"vehicleId,omitempty"`
	Vehicle      *Vehicle     `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}
