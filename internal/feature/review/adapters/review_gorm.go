// Package adapters provides the gorm-backed review repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalog "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/review/domain/entity"
	"shop_backend/internal/feature/review/usecase"
)

type reviewGorm struct {
	db *gorm.DB
}

var (
	_ usecase.ReviewRepository = (*reviewGorm)(nil)
	_ usecase.ProductChecker   = (*reviewGorm)(nil)
)

func NewReviewRepository(db *gorm.DB) *reviewGorm {
	return &reviewGorm{db: db}
}

func (r *reviewGorm) List(ctx context.Context, productID *uint) ([]entity.Review, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	var out []entity.Review
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (r *reviewGorm) Create(ctx context.Context, rv *entity.Review) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyReviewed
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewGorm) Summary(ctx context.Context, productID uint) (int64, float64, error) {
	var row struct {
		Count   int64
		Average float64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("summarize reviews: %w", err)
	}
	return row.Count, row.Average, nil
}

// ProductExists checks the catalog's product table.
func (r *reviewGorm) ProductExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check product: %w", err)
	}
	return n > 0, nil
}
