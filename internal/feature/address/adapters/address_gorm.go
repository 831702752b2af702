// Package adapters provides the gorm-backed address repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/address/domain/entity"
	"shop_backend/internal/feature/address/usecase"
)

type addressGorm struct {
	db *gorm.DB
}

var _ usecase.AddressRepository = (*addressGorm)(nil)

func NewAddressRepository(db *gorm.DB) *addressGorm {
	return &addressGorm{db: db}
}

func (r *addressGorm) List(ctx context.Context, userID uint) ([]entity.Address, error) {
	var out []entity.Address
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return out, nil
}

func (r *addressGorm) FindByID(ctx context.Context, userID, id uint) (*entity.Address, error) {
	var a entity.Address
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}

func (r *addressGorm) Create(ctx context.Context, a *entity.Address) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

// Update writes every editable column, including a cleared AddressLine2.
func (r *addressGorm) Update(ctx context.Context, a *entity.Address) error {
	res := r.db.WithContext(ctx).
		Model(a).
		Where("user_id = ?", a.UserID).
		Select("address_line1", "address_line2", "city", "state", "zip_code", "country").
		Updates(a)
	if res.Error != nil {
		return fmt.Errorf("update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}

func (r *addressGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Address{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}
