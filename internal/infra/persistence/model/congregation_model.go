package model

import (
	"time"

	"github.com/google/uuid"
)

// CongregationModel mirrors the 'congregacoes' table.
type CongregationModel struct {
	ID        uuid.UUID `gorm:"column:congregacao_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"column:nome;type:varchar(255);not null"`
	Address   string    `gorm:"column:endereco;type:text"`
	Phone     string    `gorm:"column:telefone;type:varchar(20)"`
	Email     string    `gorm:"type:varchar(255)"`
	Plan      string    `gorm:"column:plano;type:varchar(50);default:'basico'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CongregationModel) TableName() string {
	return "congregacoes"
}
