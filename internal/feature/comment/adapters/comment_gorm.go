// Package adapters provides the gorm-backed comment repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/comment/domain/entity"
	"shop_backend/internal/feature/comment/usecase"
)

type commentGorm struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentGorm)(nil)

func NewCommentRepository(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

func (r *commentGorm) ListByStatus(ctx context.Context, status entity.Status) ([]entity.Comment, error) {
	var out []entity.Comment
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return out, nil
}

func (r *commentGorm) Create(ctx context.Context, c *entity.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentGorm) SetStatus(ctx context.Context, id uint, status entity.Status) (*entity.Comment, error) {
	var c entity.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrCommentNotFound
			}
			return fmt.Errorf("find comment: %w", err)
		}
		if err := tx.Model(&c).Update("status", status).Error; err != nil {
			return fmt.Errorf("update comment status: %w", err)
		}
		c.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
