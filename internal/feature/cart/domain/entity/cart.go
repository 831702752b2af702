// Package entity defines shopping cart items and the priced cart view.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	deal "shop_backend/internal/feature/deal/domain/entity"
)

// CartItem is one product line in a user's cart.
type CartItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is the catalog data a cart line needs.
type Product struct {
	ID    uint
	Name  string
	Price decimal.Decimal
	Stock int
}

// Line is a cart item joined with its product.
type Line struct {
	ItemID    uint
	ProductID uint
	Name      string
	Price     decimal.Decimal
	Stock     int
	Quantity  int
}

// PricedLine is a Line with the discount applied.
type PricedLine struct {
	Line
	Discount  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Cart is the priced content of a user's cart.
type Cart struct {
	Lines []PricedLine
	Total decimal.Decimal
}

// Price applies discounts to lines and sums the total.
func Price(lines []Line, discounts deal.Discounts) *Cart {
	cart := &Cart{Lines: make([]PricedLine, 0, len(lines)), Total: decimal.Zero}
	for _, l := range lines {
		unit := discounts.Apply(l.Name, l.Price)
		total := unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
		cart.Lines = append(cart.Lines, PricedLine{
			Line:      l,
			Discount:  discounts.Percent(l.Name),
			UnitPrice: unit,
			LineTotal: total,
		})
		cart.Total = cart.Total.Add(total)
	}
	return cart
}
