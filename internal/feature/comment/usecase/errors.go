// Package usecase implements posting and moderating comments.
package usecase

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidStatus   = errors.New("status must be visible or hidden")
)
