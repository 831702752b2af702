// Package adapters provides the gorm-backed deal repository.
package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop_backend/internal/feature/deal/domain/entity"
	"shop_backend/internal/feature/deal/usecase"
)

type dealGorm struct {
	db *gorm.DB
}

var _ usecase.DealRepository = (*dealGorm)(nil)

// NewDealRepository creates a deal repository.
func NewDealRepository(db *gorm.DB) *dealGorm {
	return &dealGorm{db: db}
}

func (r *dealGorm) ListActive(ctx context.Context, day time.Time) ([]entity.Deal, error) {
	day = entity.Date(day)
	var out []entity.Deal
	err := r.db.WithContext(ctx).
		Where("start_time <= ? AND end_time >= ?", day, day).
		Order("start_time ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list active deals: %w", err)
	}
	return out, nil
}

func (r *dealGorm) List(ctx context.Context) ([]entity.Deal, error) {
	var out []entity.Deal
	if err := r.db.WithContext(ctx).Order("start_time DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return out, nil
}

func (r *dealGorm) Create(ctx context.Context, d *entity.Deal) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create deal: %w", err)
	}
	return nil
}

func (r *dealGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Deal{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete deal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrDealNotFound
	}
	return nil
}
