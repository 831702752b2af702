package usecase

import (
	"context"
	"fmt"
	"strings"

	"shop_backend/internal/feature/auth/domain/entity"
)

// ProfileInput replaces the editable profile fields.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// profileUsecase reads and edits the caller's own account.
type profileUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewProfileUsecase creates a profileUsecase.
func NewProfileUsecase(users UserRepository, sessions SessionRepository) *profileUsecase {
	return &profileUsecase{users: users, sessions: sessions}
}

// GetProfile returns the user with the given id.
func (u *profileUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile overwrites the profile of targetID. Only the owner may do this.
// A password change signs the user out everywhere.
func (u *profileUsecase) UpdateProfile(ctx context.Context, actorID, targetID uint, in ProfileInput) (*entity.User, error) {
	if actorID != targetID {
		return nil, ErrForbidden
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	user.Password = hashed

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := u.sessions.RevokeAllByUserID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return user, nil
}
