// Package entity defines product suppliers.
package entity

import "time"

// Supplier is a vendor registered by a user. Verified is set by an admin.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    *uint  `gorm:"index"`
	Name      string `gorm:"size:255;not null"`
	Location  string `gorm:"size:255;not null"`
	Verified  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// OwnedBy reports whether userID registered the supplier.
func (s *Supplier) OwnedBy(userID uint) bool {
	return s.UserID != nil && *s.UserID == userID
}
