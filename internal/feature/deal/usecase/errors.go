// Package usecase implements deal management and the active discount lookup.
package usecase

import "errors"

var (
	ErrDealNotFound = errors.New("deal not found")

	// ErrInvalidDeal wraps a validation failure such as an end date before the start.
	ErrInvalidDeal = errors.New("invalid deal")
)
