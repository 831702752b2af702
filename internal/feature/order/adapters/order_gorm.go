// Package adapters provides the gorm-backed order store.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cart "shop_backend/internal/feature/cart/domain/entity"
	catalog "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/feature/order/usecase"
)

type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderGorm)(nil)

func NewOrderRepository(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *orderGorm) WithinTx(ctx context.Context, fn func(ctx context.Context, tx usecase.OrderTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &orderTx{db: tx})
	})
}

// List returns the user's orders newest first, with items.
func (r *orderGorm) List(ctx context.Context, userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *orderGorm) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	return findOrder(r.db.WithContext(ctx), id)
}

func findOrder(db *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.Preload("Items", orderedItems).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

// orderTx runs every statement on the transaction handle.
type orderTx struct {
	db *gorm.DB
}

var _ usecase.OrderTx = (*orderTx)(nil)

func (t *orderTx) CartLines(ctx context.Context, userID uint) ([]entity.CartLine, error) {
	var out []entity.CartLine
	err := t.db.WithContext(ctx).
		Model(&cart.CartItem{}).
		Select("cart_items.product_id, cart_items.quantity, products.name, products.price").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	return out, nil
}

// DecrementStock only updates when enough units remain, so concurrent
// checkouts cannot oversell.
func (t *orderTx) DecrementStock(ctx context.Context, productID uint, qty int) error {
	res := t.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("decrement stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrInsufficientStock
	}
	return nil
}

func (t *orderTx) IncrementStock(ctx context.Context, productID uint, qty int) error {
	err := t.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

func (t *orderTx) CreateOrder(ctx context.Context, o *entity.Order) error {
	if err := t.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (t *orderTx) ClearCart(ctx context.Context, userID uint) error {
	if err := t.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&cart.CartItem{}).Error; err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (t *orderTx) LockOrder(ctx context.Context, id uint) (*entity.Order, error) {
	return findOrder(t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (t *orderTx) SetStatus(ctx context.Context, id uint, status entity.Status) error {
	res := t.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrOrderNotFound
	}
	return nil
}
