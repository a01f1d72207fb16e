package models

import (
	"errors"
	"strings"
	"time"
)

type RideStatus string

const (
	RideUnscheduled RideStatus = "unscheduled"
	RideScheduled   RideStatus = "scheduled"
	RideCompleted   RideStatus = "completed"
	RideCancelled   RideStatus = "cancelled"
)

var ErrInvalidRideStatus = errors.New("invalid ride status")

func ParseRideStatus(s string) (RideStatus, error) {
	switch st := RideStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case RideUnscheduled, RideScheduled, RideCompleted, RideCancelled:
		return st, nil
	default:
		return "", ErrInvalidRideStatus
	}
}

// Ride is a single trip request. DriverID stays empty while the ride is
// unscheduled; no overlap constraint is enforced here, dispatchers resolve
// conflicts through the availability filters on the list endpoint.
type Ride struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
	StartTime       time.Time  `gorm:"index" json:"startTime" binding:"required"`
	EndTime         time.Time  `json:"endTime" binding:"required"`
	RiderID         string     `gorm:"index" json:"riderId"`
	Rider           *Rider     `gorm:"foreignKey:RiderID" json:"rider,omitempty"`
	DriverID        string     `gorm:"index" json:"driverId,omitempty"`
	Driver          *Driver    `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	StartLocationID string     `json:"startLocationId" binding:"required"`
	StartLocation   *Location  `gorm:"foreignKey:StartLocationID" json:"startLocation,omitempty"`
	EndLocationID   string     `json:"endLocationId" binding:"required"`
	EndLocation     *Location  `gorm:"foreignKey:EndLocationID" json:"endLocation,omitempty"`
	Status          RideStatus `gorm:"index" json:"status"`
}
