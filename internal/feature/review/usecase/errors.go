// Package usecase implements product reviews and rating summaries.
package usecase

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this product")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
