package entity

import "github.com/google/uuid"

// ResourceScope is the minimal projection of a domain record the permission
// evaluator needs: which tenant it belongs to and who created it. Any
// resource type that wants scope-checked authorization exposes this pair.
type ResourceScope struct {
	TenantID *uuid.UUID // congregacao_id of the record, nil when unassigned.
	OwnerID  *uuid.UUID // account that created the record, nil when unknown.
}
