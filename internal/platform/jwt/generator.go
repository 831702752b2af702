// Package jwtmw signs access tokens and guards routes that require them.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the payload of an access token. The subject is the numeric user id.
type AccessClaims struct {
	UserID uint   `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

type generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewGenerator returns a Generator signing HS256 tokens that expire after ttl.
func NewGenerator(secret string, ttl time.Duration) *generator {
	return &generator{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken creates an HS256 token carrying sub, email, role, iat and exp.
func (g *generator) GenerateToken(userID uint, email, role string) (string, error) {
	now := g.now()
	claims := AccessClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// parseAccessToken verifies an HS256 token signed with secret and returns its claims.
func parseAccessToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	claims := &AccessClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if claims.UserID == 0 {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}
