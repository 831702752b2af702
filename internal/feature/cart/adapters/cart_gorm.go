// Package adapters provides the gorm-backed cart repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/usecase"
	catalog "shop_backend/internal/feature/catalog/domain/entity"
)

type cartGorm struct {
	db *gorm.DB
}

var _ usecase.CartRepository = (*cartGorm)(nil)

func NewCartRepository(db *gorm.DB) *cartGorm {
	return &cartGorm{db: db}
}

func (r *cartGorm) Lines(ctx context.Context, userID uint) ([]entity.Line, error) {
	var out []entity.Line
	err := r.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.id AS item_id, ci.product_id, ci.quantity, p.name, p.price, p.stock").
		Joins("JOIN products AS p ON p.id = ci.product_id").
		Where("ci.user_id = ?", userID).
		Order("ci.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return out, nil
}

func (r *cartGorm) FindItem(ctx context.Context, userID, id uint) (*entity.CartItem, error) {
	return r.first(ctx, "id = ? AND user_id = ?", id, userID)
}

func (r *cartGorm) FindByProduct(ctx context.Context, userID, productID uint) (*entity.CartItem, error) {
	return r.first(ctx, "user_id = ? AND product_id = ?", userID, productID)
}

func (r *cartGorm) first(ctx context.Context, query string, args ...any) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.db.WithContext(ctx).Where(query, args...).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

func (r *cartGorm) Product(ctx context.Context, id uint) (*entity.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).Select("id", "name", "price", "stock").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &entity.Product{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}, nil
}

func (r *cartGorm) Save(ctx context.Context, item *entity.CartItem) error {
	db := r.db.WithContext(ctx)
	if item.ID == 0 {
		if err := db.Create(item).Error; err != nil {
			return fmt.Errorf("create cart item: %w", err)
		}
		return nil
	}
	res := db.Model(item).Where("user_id = ?", item.UserID).Update("quantity", item.Quantity)
	if res.Error != nil {
		return fmt.Errorf("update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

func (r *cartGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.CartItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

func (r *cartGorm) Clear(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
