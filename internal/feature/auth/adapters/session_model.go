package adapters

import (
	"time"

	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/domain/entity"
)

// SessionModel is a row of the sessions table. The refresh token is the key.
type SessionModel struct {
	ID        string     `gorm:"primaryKey;size:64"`
	UserID    uint       `gorm:"index;not null"`
	UserAgent string     `gorm:"size:512"`
	IPAddress string     `gorm:"size:45"`
	CreatedAt time.Time  `gorm:"not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

func (SessionModel) TableName() string { return "sessions" }

func toSessionModel(s *entity.Session) *SessionModel {
	m := SessionModel(*s)
	return &m
}

func (m *SessionModel) session() *entity.Session {
	s := entity.Session(*m)
	return &s
}

// liveSessions scopes a query to the unrevoked, unexpired sessions of userID at now.
func liveSessions(userID uint, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, now)
	}
}
