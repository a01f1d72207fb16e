package models

import "time"

// User is the login identity a bearer token resolves to. Admin, Driver and
// Rider users also own a record in the matching entity table; EntityID links
// the two so self-access routes can match the token against a URL id.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	EntityID  string    `gorm:"index" json:"entityId,omitempty"`
}
