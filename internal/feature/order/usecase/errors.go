// Package usecase implements checkout and the order lifecycle.
package usecase

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrInvalidTransition = errors.New("order status cannot change")
	ErrOrderTooLarge     = errors.New("order total exceeds the allowed maximum")
)
