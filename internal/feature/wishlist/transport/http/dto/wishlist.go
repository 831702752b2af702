// Package dto defines the request and response bodies of the wishlist endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/wishlist/domain/entity"
)

type WishlistReq struct {
	ProductID uint `json:"product_id" binding:"required,min=1"`
}

type WishlistItemRes struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewWishlistItemRes(item *entity.WishlistItem) WishlistItemRes {
	return WishlistItemRes{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		CreatedAt:   item.CreatedAt,
	}
}
