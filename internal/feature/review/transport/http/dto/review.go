// Package dto defines the request and response bodies of the review endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/review/domain/entity"
)

type ReviewReq struct {
	ProductID uint   `json:"product_id" binding:"required,min=1"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required,max=5000"`
}

type ReviewRes struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingRes struct {
	ProductID uint    `json:"product_id"`
	Count     int64   `json:"count"`
	Average   float64 `json:"average"`
}

func NewReviewRes(r *entity.Review) ReviewRes {
	return ReviewRes{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
