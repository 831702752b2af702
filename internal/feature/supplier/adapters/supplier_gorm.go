// Package adapters provides the gorm-backed supplier repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/supplier/domain/entity"
	"shop_backend/internal/feature/supplier/usecase"
)

type supplierGorm struct {
	db *gorm.DB
}

var _ usecase.SupplierRepository = (*supplierGorm)(nil)

func NewSupplierRepository(db *gorm.DB) *supplierGorm {
	return &supplierGorm{db: db}
}

func (r *supplierGorm) List(ctx context.Context) ([]entity.Supplier, error) {
	var out []entity.Supplier
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return out, nil
}

func (r *supplierGorm) FindByID(ctx context.Context, id uint) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return &s, nil
}

func (r *supplierGorm) Create(ctx context.Context, s *entity.Supplier) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *supplierGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Supplier{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierGorm) SetVerified(ctx context.Context, id uint, verified bool) error {
	res := r.db.WithContext(ctx).Model(&entity.Supplier{}).Where("id = ?", id).Update("verified", verified)
	if res.Error != nil {
		return fmt.Errorf("verify supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSupplierNotFound
	}
	return nil
}
