// Package usecase implements account registration, login, token rotation and
// profile management.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email, phone number or username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInactiveUser is returned on login for a deactivated account.
	ErrInactiveUser = errors.New("user account is inactive")

	// ErrWeakPassword is returned when the password length is out of range.
	ErrWeakPassword = errors.New("invalid password length")

	// ErrForbidden is returned when a user edits another user's profile.
	ErrForbidden = errors.New("you can only update your own profile")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidRefreshToken covers unknown, revoked and expired refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
