// Package usecase implements the caller's wishlist.
package usecase

import "errors"

var (
	ErrItemNotFound    = errors.New("wishlist item not found")
	ErrProductNotFound = errors.New("product not found")
	ErrAlreadyListed   = errors.New("product is already in your wishlist")
)
