// Package entity defines the catalog's brands, categories, products and images.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand is a product manufacturer.
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}

// Category is a product type such as "Phones" or "Laptops".
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}

// Product is an item for sale. UserID is the seller that listed it, if any.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      *uint           `gorm:"index" json:"user_id,omitempty"`
	Name        string          `gorm:"index;size:255;not null" json:"name"`
	Description string          `gorm:"type:text;not null;default:''" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CategoryID  *uint           `gorm:"index" json:"category_id,omitempty"`
	BrandID     uint            `gorm:"index;not null" json:"brand_id"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OwnedBy reports whether userID listed the product.
func (p *Product) OwnedBy(userID uint) bool {
	return p.UserID != nil && *p.UserID == userID
}

// ProductImage is a picture of a product, stored as a URL.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	ImageURL  string `gorm:"size:1024;not null" json:"image_url"`
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID *uint
	BrandID    *uint
	Search     string
	Limit      int
	Offset     int
	WithImages bool
}
