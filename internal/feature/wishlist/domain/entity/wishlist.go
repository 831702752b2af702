// Package entity defines wishlist entries.
package entity

import "time"

// WishlistItem is a product a user saved for later. ProductName is read-only,
// filled from the product table on listing.
type WishlistItem struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductID   uint   `gorm:"uniqueIndex:idx_wishlist_user_product;not null"`
	ProductName string `gorm:"->;-:migration"`
	CreatedAt   time.Time
}
