package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"

	"ecclesia/internal/domain/entity"
)

// RoleNamesJSON stores a string set in a jsonb column.
type RoleNamesJSON []string

// Value implements driver.Valuer.
func (r RoleNamesJSON) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal role names")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (r *RoleNamesJSON) Scan(src any) error {
	return scanJSON(src, (*[]string)(r))
}

// PermissionsJSON stores a permission list in a jsonb column.
type PermissionsJSON []entity.Permission

// Value implements driver.Valuer.
func (p PermissionsJSON) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]entity.Permission(p))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal permissions")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *PermissionsJSON) Scan(src any) error {
	return scanJSON(src, (*[]entity.Permission)(p))
}

// SnapshotJSON stores an opaque before/after snapshot in a json column.
type SnapshotJSON struct {
	Raw any
}

// Value implements driver.Valuer.
func (s SnapshotJSON) Value() (driver.Value, error) {
	if s.Raw == nil {
		return nil, nil
	}

	b, err := json.Marshal(s.Raw)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *SnapshotJSON) Scan(src any) error {
	if src == nil {
		s.Raw = nil

		return nil
	}

	var decoded any
	if err := scanJSON(src, &decoded); err != nil {
		return err
	}
	s.Raw = decoded

	return nil
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return errors.Wrap(json.Unmarshal(v, dst), "failed to scan json column")
	case string:
		return errors.Wrap(json.Unmarshal([]byte(v), dst), "failed to scan json column")
	default:
		return errors.Errorf("unsupported json column source type %T", src)
	}
}
