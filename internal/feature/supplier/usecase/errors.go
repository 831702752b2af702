// Package usecase implements supplier registration and verification.
package usecase

import "errors"

// ErrSupplierNotFound is also returned when the caller does not own the supplier.
var ErrSupplierNotFound = errors.New("supplier not found")
