package models

import (
	"errors"
	"strings"
	"time"
)

// Tag labels a location with a campus region or a lifecycle status. Inactive
// and custom locations are both excluded from "active" queries: custom
// locations are rider-entered one-offs, not curated stops.
type Tag string

const (
	TagNorth    Tag = "north"
	TagWest     Tag = "west"
	TagEast     Tag = "east"
	TagCentral  Tag = "central"
	TagInactive Tag = "inactive"
	TagCustom   Tag = "custom"
)

var ErrInvalidTag = errors.New("invalid location tag")

func ParseTag(s string) (Tag, error) {
	switch t := Tag(strings.ToLower(strings.TrimSpace(s))); t {
	case TagNorth, TagWest, TagEast, TagCentral, TagInactive, TagCustom:
		return t, nil
	default:
		return "", ErrInvalidTag
	}
}

type Location struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Name      string    `json:"name" binding:"required"`
	Address   string    `json:"address" binding:"required"`
	Tag       Tag       `gorm:"index" json:"tag"`
	Info      string    `json:"info"`
}
