package models

import (
	"errors"
	"strings"
	"time"
)

// Organization is the sponsoring program a rider belongs to.
type Organization string

const (
	OrgRedRunner Organization = "RedRunner"
	OrgCULift    Organization = "CULift"
)

var ErrInvalidOrganization = errors.New("invalid organization")

func ParseOrganization(s string) (Organization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "redrunner":
		return OrgRedRunner, nil
	case "culift":
		return OrgCULift, nil
	default:
		return "", ErrInvalidOrganization
	}
}

type Rider struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time    `json:"-"`
	UpdatedAt     time.Time    `json:"-"`
	FirstName     string       `json:"firstName" binding:"required"`
	LastName      string       `json:"lastName" binding:"required"`
	PhoneNumber   string       `json:"phoneNumber"`
	Email         string       `json:"email" binding:"required,email"`
	Pronouns      string       `json:"pronouns"`
	Accessibility string       `json:"accessibility"`
	Description   string       `json:"description"`
	JoinDate      string       `json:"joinDate"`
	EndDate       string       `json:"endDate"`
	Address       string       `json:"address"`
	Organization  Organization `json:"organization"`
	PhotoLink     string       `json:"photoLink"`
	Active        bool         `json:"active"`

	// FavoriteLocations holds the ordered location ids from the
	// favorite_locations join table; populated on read, never a column.
	FavoriteLocations []string `gorm:"-" json:"favoriteLocations"`
}

// FavoriteLocation is one row of the rider -> location favorites join table.
// Position preserves insertion order; the composite key makes adds idempotent.
type FavoriteLocation struct {
	RiderID    string    `gorm:"primaryKey" json:"riderId"`
	LocationID string    `gorm:"primaryKey" json:"locationId"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"-"`
}
