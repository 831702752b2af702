// Package dto defines the request and response bodies of the comment endpoints.
package dto

import (
	"time"

	"shop_backend/internal/feature/comment/domain/entity"
)

type CommentReq struct {
	Message string `json:"message" binding:"required,max=5000"`
}

type StatusReq struct {
	Status string `json:"status" binding:"required,oneof=visible hidden"`
}

type CommentRes struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentRes(c *entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		UserID:    c.UserID,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}
