package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'membros' table. CongregationID and CreatedBy are
// the columns tenant isolation and own-scope checks read.
type MemberModel struct {
	ID             uuid.UUID  `gorm:"column:membro_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string     `gorm:"column:nome;type:varchar(255);not null"`
	CPF            string     `gorm:"column:cpf;type:varchar(14)"`
	BirthDate      *time.Time `gorm:"column:data_nascimento;type:date"`
	Phone          string     `gorm:"column:telefone;type:varchar(20)"`
	Email          string     `gorm:"type:varchar(255)"`
	CongregationID *uuid.UUID `gorm:"column:congregacao_id;type:uuid;index"`
	CreatedBy      *uuid.UUID `gorm:"column:created_by;type:uuid"`
	FamilyID       *uuid.UUID `gorm:"column:familia_id;type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "membros"
}
