// Package adapters provides the gorm-backed repositories of the catalog feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

type brandGorm struct {
	db *gorm.DB
}

var _ usecase.BrandRepository = (*brandGorm)(nil)

// NewBrandRepository creates a brand repository.
func NewBrandRepository(db *gorm.DB) *brandGorm {
	return &brandGorm{db: db}
}

func (r *brandGorm) List(ctx context.Context) ([]entity.Brand, error) {
	var out []entity.Brand
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return out, nil
}

func (r *brandGorm) Create(ctx context.Context, b *entity.Brand) error {
	return create(ctx, r.db, b)
}

func (r *brandGorm) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &entity.Brand{}, id)
}

type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// List returns categories in id order; display order is applied by the usecase.
func (r *categoryGorm) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	return create(ctx, r.db, c)
}

func (r *categoryGorm) Exists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &entity.Category{}, id)
}

func create(ctx context.Context, db *gorm.DB, v any) error {
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrNameTaken
		}
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func exists(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
