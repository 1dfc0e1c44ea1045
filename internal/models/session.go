package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession is a server-side admin session. The signed token handed to the
// client is only valid while the matching row is active.
type UserSession struct {
	ID        string     `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    uint       `json:"user_id"    gorm:"index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"         gorm:"type:text"`
	CreatedAt time.Time  `json:"created"`
	UpdatedAt time.Time  `json:"modified"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`
}

func (UserSession) TableName() string { return "user_sessions" }

func (s *UserSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
