// Package usecase implements the caller-scoped address book.
package usecase

import "errors"

// ErrAddressNotFound is also returned for addresses owned by another user.
var ErrAddressNotFound = errors.New("address not found")
