package models

import "time"

type Vehicle struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time `json:"-"`
	UpdatedAt            time.Time `json:"-"`
	Name                 string    `json:"name" binding:"required"`
	Capacity             int       `json:"capacity"`
	WheelchairAccessible bool      `json:"wheelchairAccessible"`
}
