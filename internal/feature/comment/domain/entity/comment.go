// Package entity defines site comments and their moderation status.
package entity

import "time"

type Status string

const (
	StatusVisible Status = "visible"
	StatusHidden  Status = "hidden"
)

func (s Status) Valid() bool {
	return s == StatusVisible || s == StatusHidden
}

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Message   string `gorm:"type:text;not null"`
	Status    Status `gorm:"size:50;index;not null;default:visible"`
	CreatedAt time.Time
}
