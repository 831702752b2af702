package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// maxPasswordBytes is the bcrypt input limit.
	maxPasswordBytes = 72

	// refreshTokenBytes yields a 64-character hex refresh token.
	refreshTokenBytes = 32

	// dummyHash keeps login timing constant when the email is unknown.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository abstracts the persistence layer for user entities.
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists on a unique conflict.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update saves profile fields. It returns ErrUserAlreadyExists on a unique conflict.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator signs access tokens.
type TokenGenerator interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

// Options tunes token lifetimes and the per-user session cap.
type Options struct {
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	MaxSessionsPerUser int
}

// RegisterInput is the data needed to open an account.
type RegisterInput struct {
	Email       string
	PhoneNumber string
	Password    string
	Username    string
}

// authUsecase implements registration, login and token rotation.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	tokens   TokenGenerator
	opts     Options
}

// NewAuthUsecase creates an authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, opts Options) *authUsecase {
	if opts.MaxSessionsPerUser < 1 {
		opts.MaxSessionsPerUser = 1
	}
	return &authUsecase{users: users, sessions: sessions, tokens: tokens, opts: opts}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: must be at most %d bytes long", ErrWeakPassword, maxPasswordBytes)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Register creates a user with the default role and signs them in.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput, client entity.ClientInfo) (*entity.TokenPair, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if username == "" {
		username = email
	}
	user := &entity.User{
		Username:    username,
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		Password:    hashed,
		Role:        entity.RoleUser,
		IsActive:    true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return u.issue(ctx, user, client)
}

// Login verifies the credentials and opens a new session.
// The bcrypt comparison always runs so unknown emails take as long as bad passwords.
func (u *authUsecase) Login(ctx context.Context, email, password string, client entity.ClientInfo) (*entity.TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return u.issue(ctx, user, client)
}

// Refresh rotates a refresh token: the old session is revoked and a new pair issued.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string, client entity.ClientInfo) (*entity.TokenPair, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrInvalidRefreshToken
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}
	return u.issue(ctx, user, client)
}

// Logout revokes the session behind refreshToken.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrInvalidRefreshToken
		}
		return err
	}
	return nil
}

// PurgeExpiredSessions deletes sessions past their expiry.
func (u *authUsecase) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx)
}

func (u *authUsecase) issue(ctx context.Context, user *entity.User, client entity.ClientInfo) (*entity.TokenPair, error) {
	count, err := u.sessions.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	for ; count >= int64(u.opts.MaxSessionsPerUser); count-- {
		if err := u.sessions.DeleteOldestByUserID(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to evict session: %w", err)
		}
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := u.sessions.Create(ctx, entity.NewSession(refresh, user.ID, client, u.opts.RefreshTTL)); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	access, err := u.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    u.opts.AccessTTL,
	}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
