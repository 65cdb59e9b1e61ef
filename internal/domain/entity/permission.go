package entity

import "strings"

// Scope is the breadth of records a granted permission applies to.
type Scope string

const (
	// ScopeOwn restricts the permission to records created by the acting account.
	ScopeOwn Scope = "own"
	// ScopeCongregation restricts the permission to records of the request's tenant.
	ScopeCongregation Scope = "congregation"
	// ScopeAll applies the permission to every record.
	ScopeAll Scope = "all"
)

// Wildcard matches any resource or action in a Permission.
const Wildcard = "*"

// RoleAdmin is the superuser role name. It bypasses all permission and
// tenant checks, by contract.
const RoleAdmin = "admin"

// Permission grants an action on a resource within a scope. Permissions are
// value objects embedded in a Role; they have no identity of their own.
type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Scope    Scope  `json:"scope,omitempty"`
}

// EffectiveScope resolves the scope, defaulting an absent value to ScopeAll.
func (p Permission) EffectiveScope() Scope {
	if p.Scope == "" {
		return ScopeAll
	}

	return p.Scope
}

// Matches reports whether this permission covers the requested resource and
// action, honoring the "*" wildcard on either field.
func (p Permission) Matches(resource, action string) bool {
	return (p.Resource == resource || p.Resource == Wildcard) &&
		(p.Action == action || p.Action == Wildcard)
}

// PermissionsFromRoleNames synthesizes permissions from legacy colon-delimited
// role names of the form "resource:action" or "resource:action:scope". Names
// without a colon contribute nothing. The scope token "congregation" or
// "scoped" maps to ScopeCongregation, "own" to ScopeOwn, anything else to
// ScopeAll. All role-name parsing happens here, once, so the evaluator only
// ever sees structured permissions.
func PermissionsFromRoleNames(names []string) []Permission {
	perms := make([]Permission, 0, len(names))
	for _, name := range names {
		parts := strings.Split(name, ":")
		if len(parts) < 2 {
			continue
		}

		scope := ScopeAll
		if len(parts) >= 3 {
			switch parts[2] {
			case "congregation", "scoped":
				scope = ScopeCongregation
			case "own":
				scope = ScopeOwn
			}
		}

		perms = append(perms, Permission{Resource: parts[0], Action: parts[1], Scope: scope})
	}

	return perms
}
