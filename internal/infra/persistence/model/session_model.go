package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'user_sessions' table. The unique index on
// TokenHash is what serializes concurrent rotations of the same token.
type SessionModel struct {
	ID        uuid.UUID `gorm:"column:session_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"column:user_id;type:uuid;not null"`
	TokenHash string    `gorm:"column:refresh_token_hash;type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	Revoked   bool      `gorm:"default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "user_sessions"
}
