package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shop_backend/internal/feature/cart/domain/entity"
	deal "shop_backend/internal/feature/deal/domain/entity"
)

type CartRepository interface {
	// Lines returns the user's items joined with their products, in item id order.
	Lines(ctx context.Context, userID uint) ([]entity.Line, error)
	FindItem(ctx context.Context, userID, id uint) (*entity.CartItem, error)
	// FindByProduct returns ErrItemNotFound when the product is not in the cart.
	FindByProduct(ctx context.Context, userID, productID uint) (*entity.CartItem, error)
	Product(ctx context.Context, id uint) (*entity.Product, error)
	// Save inserts the item when ID is zero and updates its quantity otherwise.
	Save(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, userID, id uint) error
	Clear(ctx context.Context, userID uint) error
}

// DiscountSource returns today's deal discounts.
type DiscountSource interface {
	Discounts(ctx context.Context) (deal.Discounts, error)
}

type cartUsecase struct {
	items     CartRepository
	discounts DiscountSource
}

func NewCartUsecase(items CartRepository, discounts DiscountSource) *cartUsecase {
	return &cartUsecase{items: items, discounts: discounts}
}

// Get returns the priced cart. Deal lookup failures fall back to list prices.
func (u *cartUsecase) Get(ctx context.Context, userID uint) (*entity.Cart, error) {
	lines, err := u.items.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}
	discounts, err := u.discounts.Discounts(ctx)
	if err != nil {
		slog.Warn("cart priced without deals", "user_id", userID, "error", err)
		discounts = nil
	}
	return entity.Price(lines, discounts), nil
}

// Add puts quantity units of a product into the cart, merging with an
// existing line. The merged quantity may not exceed the stock.
func (u *cartUsecase) Add(ctx context.Context, userID, productID uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	p, err := u.items.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := u.items.FindByProduct(ctx, userID, productID)
	switch {
	case errors.Is(err, ErrItemNotFound):
		item = &entity.CartItem{UserID: userID, ProductID: productID}
	case err != nil:
		return nil, err
	}

	if item.Quantity+quantity > p.Stock {
		return nil, fmt.Errorf("%w: %d of %q available", ErrInsufficientStock, p.Stock, p.Name)
	}
	item.Quantity += quantity
	if err := u.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update sets the quantity of one of the caller's lines.
func (u *cartUsecase) Update(ctx context.Context, userID, id uint, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, err := u.items.FindItem(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	p, err := u.items.Product(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if quantity > p.Stock {
		return nil, fmt.Errorf("%w: %d of %q available", ErrInsufficientStock, p.Stock, p.Name)
	}
	item.Quantity = quantity
	if err := u.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (u *cartUsecase) Remove(ctx context.Context, userID, id uint) error {
	return u.items.Delete(ctx, userID, id)
}

func (u *cartUsecase) Clear(ctx context.Context, userID uint) error {
	return u.items.Clear(ctx, userID)
}
