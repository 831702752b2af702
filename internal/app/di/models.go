package di

import (
	address "shop_backend/internal/feature/address/domain/entity"
	authadapters "shop_backend/internal/feature/auth/adapters"
	auth "shop_backend/internal/feature/auth/domain/entity"
	cart "shop_backend/internal/feature/cart/domain/entity"
	catalog "shop_backend/internal/feature/catalog/domain/entity"
	comment "shop_backend/internal/feature/comment/domain/entity"
	deal "shop_backend/internal/feature/deal/domain/entity"
	order "shop_backend/internal/feature/order/domain/entity"
	review "shop_backend/internal/feature/review/domain/entity"
	supplier "shop_backend/internal/feature/supplier/domain/entity"
	wishlist "shop_backend/internal/feature/wishlist/domain/entity"
)

// Models lists every table for AutoMigrate, parents before children.
func Models() []any {
	return []any{
		&auth.User{},
		&authadapters.SessionModel{},
		&address.Address{},
		&catalog.Brand{},
		&catalog.Category{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&supplier.Supplier{},
		&review.Review{},
		&wishlist.WishlistItem{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
		&comment.Comment{},
		&deal.Deal{},
	}
}
