package usecase

import (
	"context"

	"shop_backend/internal/feature/wishlist/domain/entity"
)

type WishlistRepository interface {
	List(ctx context.Context, userID uint) ([]entity.WishlistItem, error)
	// Add returns ErrAlreadyListed on a duplicate (user, product).
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userID, id uint) error
	ProductName(ctx context.Context, productID uint) (string, error)
}

type wishlistUsecase struct {
	items WishlistRepository
}

func NewWishlistUsecase(items WishlistRepository) *wishlistUsecase {
	return &wishlistUsecase{items: items}
}

func (u *wishlistUsecase) List(ctx context.Context, userID uint) ([]entity.WishlistItem, error) {
	return u.items.List(ctx, userID)
}

func (u *wishlistUsecase) Add(ctx context.Context, userID, productID uint) (*entity.WishlistItem, error) {
	name, err := u.items.ProductName(ctx, productID)
	if err != nil {
		return nil, err
	}
	item := &entity.WishlistItem{UserID: userID, ProductID: productID}
	if err := u.items.Add(ctx, item); err != nil {
		return nil, err
	}
	item.ProductName = name
	return item, nil
}

func (u *wishlistUsecase) Remove(ctx context.Context, userID, id uint) error {
	return u.items.Remove(ctx, userID, id)
}
