// Package dto defines the response bodies of the order endpoints.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/order/domain/entity"
)

type OrderItemRes struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderRes struct {
	ID         uint            `json:"id"`
	UserID     uint            `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	Items      []OrderItemRes  `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewOrderRes(o *entity.Order) OrderRes {
	items := make([]OrderItemRes, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemRes{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return OrderRes{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Status:     string(o.Status),
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
