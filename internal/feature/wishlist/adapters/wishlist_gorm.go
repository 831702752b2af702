// Package adapters provides the gorm-backed wishlist repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalog "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/wishlist/domain/entity"
	"shop_backend/internal/feature/wishlist/usecase"
)

type wishlistGorm struct {
	db *gorm.DB
}

var _ usecase.WishlistRepository = (*wishlistGorm)(nil)

func NewWishlistRepository(db *gorm.DB) *wishlistGorm {
	return &wishlistGorm{db: db}
}

// List returns the user's items newest first, joined with the product name.
func (r *wishlistGorm) List(ctx context.Context, userID uint) ([]entity.WishlistItem, error) {
	var out []entity.WishlistItem
	err := r.db.WithContext(ctx).
		Table("wishlist_items AS w").
		Select("w.id, w.user_id, w.product_id, w.created_at, p.name AS product_name").
		Joins("JOIN products AS p ON p.id = w.product_id").
		Where("w.user_id = ?", userID).
		Order("w.created_at DESC, w.id DESC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return out, nil
}

func (r *wishlistGorm) Add(ctx context.Context, item *entity.WishlistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyListed
		}
		return fmt.Errorf("add wishlist item: %w", err)
	}
	return nil
}

func (r *wishlistGorm) Remove(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.WishlistItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("remove wishlist item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

func (r *wishlistGorm) ProductName(ctx context.Context, productID uint) (string, error) {
	var p catalog.Product
	err := r.db.WithContext(ctx).Select("id", "name").First(&p, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrProductNotFound
		}
		return "", fmt.Errorf("find product: %w", err)
	}
	return p.Name, nil
}
