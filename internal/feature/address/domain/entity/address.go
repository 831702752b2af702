// Package entity defines a user's postal address.
package entity

import "time"

type Address struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"index;not null"`
	AddressLine1 string    `gorm:"size:255;not null"`
	AddressLine2 *string   `gorm:"size:255"`
	City         string    `gorm:"size:100;not null"`
	State        string    `gorm:"size:100;not null"`
	ZipCode      string    `gorm:"size:20;not null"`
	Country      string    `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
