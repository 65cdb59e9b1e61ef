package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermission_Matches(t *testing.T) {
	tests := []struct {
		name     string
		perm     Permission
		resource string
		action   string
		want     bool
	}{
		{name: "exact match", perm: Permission{Resource: "members", Action: "read"}, resource: "members", action: "read", want: true},
		{name: "wrong action", perm: Permission{Resource: "members", Action: "read"}, resource: "members", action: "delete", want: false},
		{name: "wrong resource", perm: Permission{Resource: "members", Action: "read"}, resource: "families", action: "read", want: false},
		{name: "wildcard resource", perm: Permission{Resource: "*", Action: "read"}, resource: "families", action: "read", want: true},
		{name: "wildcard action", perm: Permission{Resource: "members", Action: "*"}, resource: "members", action: "delete", want: true},
		{name: "double wildcard", perm: Permission{Resource: "*", Action: "*"}, resource: "anything", action: "anything", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.perm.Matches(tt.resource, tt.action))
		})
	}
}

func TestPermission_EffectiveScope(t *testing.T) {
	assert.Equal(t, ScopeAll, Permission{}.EffectiveScope())
	assert.Equal(t, ScopeOwn, Permission{Scope: ScopeOwn}.EffectiveScope())
	assert.Equal(t, ScopeCongregation, Permission{Scope: ScopeCongregation}.EffectiveScope())
}

func TestPermissionsFromRoleNames(t *testing.T) {
	perms := PermissionsFromRoleNames([]string{
		"members:read",
		"members:update:own",
		"families:read:congregation",
		"reports:read:scoped",
		"events:create:anything-else",
		"admin",      // no colon, contributes nothing
		"secretario", // plain role name, contributes nothing
	})

	assert.Equal(t, []Permission{
		{Resource: "members", Action: "read", Scope: ScopeAll},
		{Resource: "members", Action: "update", Scope: ScopeOwn},
		{Resource: "families", Action: "read", Scope: ScopeCongregation},
		{Resource: "reports", Action: "read", Scope: ScopeCongregation},
		{Resource: "events", Action: "create", Scope: ScopeAll},
	}, perms)
}

func TestPermissionsFromRoleNames_Empty(t *testing.T) {
	assert.Empty(t, PermissionsFromRoleNames(nil))
	assert.Empty(t, PermissionsFromRoleNames([]string{"admin"}))
}

func TestAccount_HasRole(t *testing.T) {
	account := &Account{Roles: []string{"admin", "members:read"}}

	assert.True(t, account.HasRole("admin"))
	assert.True(t, account.HasRole("members:read"))
	assert.False(t, account.HasRole("secretario"))
	assert.False(t, (&Account{}).HasRole("admin"))
}
