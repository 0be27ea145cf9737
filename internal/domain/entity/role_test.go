package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleVendor.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoles_Contains(t *testing.T) {
	roles := Roles{RoleVendor}
	assert.True(t, roles.Contains(RoleVendor))
	assert.False(t, roles.Contains(RoleCustomer))
}

func TestRoles_ToStrings(t *testing.T) {
	roles := Roles{RoleVendor, RoleCustomer}
	assert.Equal(t, []string{"vendor", "customer"}, roles.ToStrings())
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"vendor", "admin", "customer", ""})
	assert.Equal(t, Roles{RoleVendor, RoleCustomer}, roles)
}
