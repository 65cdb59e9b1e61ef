package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyModel mirrors the 'familias' table.
type FamilyModel struct {
	ID             uuid.UUID  `gorm:"column:familia_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	CongregationID uuid.UUID  `gorm:"column:congregacao_id;type:uuid;not null;index"`
	Name           string     `gorm:"column:nome_familia;type:varchar(255);not null"`
	Address        string     `gorm:"column:endereco;type:text"`
	PostalCode     string     `gorm:"column:cep;type:varchar(10)"`
	City           string     `gorm:"column:cidade;type:varchar(100)"`
	State          string     `gorm:"column:estado;type:varchar(2)"`
	Phone          string     `gorm:"column:telefone_principal;type:varchar(20)"`
	ResponsibleID  *uuid.UUID `gorm:"column:responsavel_id;type:uuid"`
	Notes          string     `gorm:"column:observacoes;type:text"`
	Active         bool       `gorm:"column:ativo;default:true"`
	CreatedBy      *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (FamilyModel) TableName() string {
	return "familias"
}
