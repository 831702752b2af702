// Package entity defines product reviews.
package entity

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's rating of one product.
type Review struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_review_user_product;not null"`
	ProductID uint   `gorm:"uniqueIndex:idx_review_user_product;index;not null"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// Rating summarizes the reviews of a product.
type Rating struct {
	ProductID uint
	Count     int64
	Average   float64
}
