package models

import "time"

type Admin struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	FirstName   string    `json:"firstName" binding:"required"`
	LastName    string    `json:"lastName" binding:"required"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email" binding:"required,email"`
}
