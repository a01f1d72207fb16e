package models

import (
	"errors"
	"strings"
)

// Role is the closed set of authorization roles. Routes declare a minimum
// role; a token's role passes when its level is at least the minimum.
type Role string

const (
	RoleRider      Role = "Rider"
	RoleDriver     Role = "Driver"
	RoleDispatcher Role = "Dispatcher"
	RoleAdmin      Role = "Admin"
)

// roleLevel is the total order Admin > Dispatcher > Driver > Rider.
var roleLevel = map[Role]int{
	RoleRider:      1,
	RoleDriver:     2,
	RoleDispatcher: 3,
	RoleAdmin:      4,
}

var ErrInvalidRole = errors.New("invalid role")

// ParseRole normalizes a role string; the empty string defaults to Rider.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rider":
		return RoleRider, nil
	case "driver":
		return RoleDriver, nil
	case "dispatcher":
		return RoleDispatcher, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) Valid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r sits at or above min in the role order.
func (r Role) AtLeast(min Role) bool {
	return roleLevel[r] >= roleLevel[min]
}
