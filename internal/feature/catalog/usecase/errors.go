// Package usecase implements brand, category and product management.
package usecase

import "errors"

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")

	// ErrNameTaken is returned when a brand or category name already exists.
	ErrNameTaken = errors.New("name already exists")

	// ErrForbidden is returned when the caller neither owns the product nor is an admin.
	ErrForbidden = errors.New("you do not have permission to modify this product")

	// ErrInvalidProduct wraps a domain validation failure such as a negative price.
	ErrInvalidProduct = errors.New("invalid product")
)
