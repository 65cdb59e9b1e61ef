package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'usuarios' table. Role names live in a jsonb
// column, denormalized by design: a name may reference a role that no longer
// exists and the evaluator tolerates that.
type AccountModel struct {
	ID           uuid.UUID      `gorm:"column:usuario_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string         `gorm:"column:nome;type:varchar(255);not null"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"column:senha_hash;type:varchar(255);not null"`
	Roles        RoleNamesJSON  `gorm:"type:jsonb;not null;default:'[]'"`
	Active       bool           `gorm:"column:ativo;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Sessions []SessionModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "usuarios"
}
