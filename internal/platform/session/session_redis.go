// Package session stores refresh-token sessions in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.SessionRepository on Redis.
//
// Keys:
//
//	<prefix>:<id>            session JSON, expires with the session
//	<prefix>:user:<userID>   sorted set of session ids scored by creation time
//	<prefix>:expiry          sorted set of "<userID>|<id>" scored by expiry time
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

func (r *SessionRedis) userSessionsKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

func (r *SessionRedis) expiryKey() string {
	return r.prefix + ":expiry"
}

func expiryMember(userID uint, id string) string {
	return fmt.Sprintf("%d|%s", userID, id)
}

// Create stores the session and indexes it under its user.
func (r *SessionRedis) Create(ctx context.Context, s *entity.Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.sessionKey(s.ID), data, ttl)
		pipe.ZAdd(ctx, r.userSessionsKey(s.UserID), redis.Z{Score: float64(s.CreatedAt.UnixNano()), Member: s.ID})
		pipe.ZAdd(ctx, r.expiryKey(), redis.Z{Score: float64(s.ExpiresAt.Unix()), Member: expiryMember(s.UserID, s.ID)})
		return nil
	})
	return err
}

// FindByID retrieves a session by its refresh token.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var s entity.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

// activeByUserID returns the user's valid sessions, oldest first, dropping
// index entries whose session key has expired.
func (r *SessionRedis) activeByUserID(ctx context.Context, userID uint) ([]*entity.Session, error) {
	key := r.userSessionsKey(userID)
	ids, err := r.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var sessions []*entity.Session
	for _, id := range ids {
		s, err := r.FindByID(ctx, id)
		if errors.Is(err, usecase.ErrSessionNotFound) {
			r.client.ZRem(ctx, key, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if s.IsValid() {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// Revoke marks an unrevoked session as revoked. The key keeps its remaining TTL.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if s.IsRevoked() {
		return usecase.ErrSessionNotFound
	}

	now := time.Now()
	s.RevokedAt = &now
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.SetArgs(ctx, r.sessionKey(id), data, redis.SetArgs{KeepTTL: true}).Err()
}

// RevokeAllByUserID revokes every session of a user.
func (r *SessionRedis) RevokeAllByUserID(ctx context.Context, userID uint) error {
	sessions, err := r.activeByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if err := r.Revoke(ctx, s.ID); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
			return err
		}
	}
	return nil
}

// CountByUserID returns the number of active sessions for a user.
func (r *SessionRedis) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	sessions, err := r.activeByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

// DeleteOldestByUserID deletes the oldest active session for a user.
func (r *SessionRedis) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	sessions, err := r.activeByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	return r.delete(ctx, sessions[0])
}

func (r *SessionRedis) delete(ctx context.Context, s *entity.Session) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.sessionKey(s.ID))
		pipe.ZRem(ctx, r.userSessionsKey(s.UserID), s.ID)
		pipe.ZRem(ctx, r.expiryKey(), expiryMember(s.UserID, s.ID))
		return nil
	})
	return err
}

// DeleteExpired drops index entries of sessions past their expiry. Redis has
// already evicted the session keys themselves.
func (r *SessionRedis) DeleteExpired(ctx context.Context) (int64, error) {
	members, err := r.client.ZRangeByScore(ctx, r.expiryKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(time.Now().Unix(), 10),
	}).Result()
	if err != nil {
		return 0, err
	}
	if len(members) == 0 {
		return 0, nil
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, m := range members {
			userPart, id, ok := strings.Cut(m, "|")
			if !ok {
				continue
			}
			userID, err := strconv.ParseUint(userPart, 10, 64)
			if err != nil {
				continue
			}
			pipe.Del(ctx, r.sessionKey(id))
			pipe.ZRem(ctx, r.userSessionsKey(uint(userID)), id)
		}
		members := toAny(members)
		pipe.ZRem(ctx, r.expiryKey(), members...)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int64(len(members)), nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
