// Package dto defines the request and response bodies of the cart endpoints.
package dto

import (
	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/cart/domain/entity"
)

type AddItemReq struct {
	ProductID uint `json:"product_id" binding:"required,min=1"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemReq struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartItemRes struct {
	ID        uint `json:"id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CartLineRes struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type CartRes struct {
	Items []CartLineRes   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func NewCartItemRes(item *entity.CartItem) CartItemRes {
	return CartItemRes{ID: item.ID, ProductID: item.ProductID, Quantity: item.Quantity}
}

func NewCartRes(cart *entity.Cart) CartRes {
	items := make([]CartLineRes, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, CartLineRes{
			ID:          l.ItemID,
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Discount:    l.Discount,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}
	return CartRes{Items: items, Total: cart.Total}
}
