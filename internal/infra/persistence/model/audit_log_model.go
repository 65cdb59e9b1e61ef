package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only.
type AuditLogModel struct {
	ID             uuid.UUID    `gorm:"column:audit_id;type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID      *uuid.UUID   `gorm:"column:usuario_id;type:uuid;index"`
	CongregationID *uuid.UUID   `gorm:"column:congregacao_id;type:uuid;index"`
	Action         string       `gorm:"column:acao;type:varchar(50);not null;index"`
	Resource       string       `gorm:"column:recurso;type:varchar(100);not null;index"`
	ResourceID     *uuid.UUID   `gorm:"column:recurso_id;type:uuid"`
	OldValues      SnapshotJSON `gorm:"column:valores_antigos;type:jsonb"`
	NewValues      SnapshotJSON `gorm:"column:valores_novos;type:jsonb"`
	IPAddress      string       `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent      string       `gorm:"column:user_agent;type:text"`
	SessionID      *uuid.UUID   `gorm:"column:session_id;type:uuid"`
	Success        bool         `gorm:"column:success;default:true"`
	ErrorMessage   string       `gorm:"column:error_message;type:text"`
	CreatedAt      time.Time    `gorm:"column:created_at;index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
