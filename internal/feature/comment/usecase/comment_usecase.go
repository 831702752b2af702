package usecase

import (
	"context"
	"strings"

	"shop_backend/internal/feature/comment/domain/entity"
)

type CommentRepository interface {
	ListByStatus(ctx context.Context, status entity.Status) ([]entity.Comment, error)
	Create(ctx context.Context, c *entity.Comment) error
	SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Comment, error)
}

type commentUsecase struct {
	comments CommentRepository
}

func NewCommentUsecase(comments CommentRepository) *commentUsecase {
	return &commentUsecase{comments: comments}
}

// Visible lists the comments shown to everyone.
func (u *commentUsecase) Visible(ctx context.Context) ([]entity.Comment, error) {
	return u.comments.ListByStatus(ctx, entity.StatusVisible)
}

// Post publishes a comment. New comments are visible.
func (u *commentUsecase) Post(ctx context.Context, userID uint, message string) (*entity.Comment, error) {
	c := &entity.Comment{UserID: userID, Message: strings.TrimSpace(message), Status: entity.StatusVisible}
	if err := u.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *commentUsecase) SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Comment, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.comments.SetStatus(ctx, id, status)
}
