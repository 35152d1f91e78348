package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func TestRoleHasPermission(t *testing.T) {
	cases := []struct {
		role string
		perm entity.Permission
		want bool
	}{
		{entity.RoleAdmin, entity.PermBranchDelete, true},
		{entity.RoleAdmin, entity.PermUserManage, true},
		{entity.RoleManager, entity.PermAssetEdit, true},
		{entity.RoleManager, entity.PermPrintBarcode, true},
		{entity.RoleManager, entity.PermWarehouseDelete, false},
		{entity.RoleManager, entity.PermUserManage, false},
		{entity.RoleAdmin, entity.PermStatsRead, true},
		{entity.RoleManager, entity.PermStatsRead, false},
		{entity.RoleViewer, entity.PermAssetRead, true},
		{entity.RoleViewer, entity.PermAssetEdit, false},
		{"desconocido", entity.PermAssetRead, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.RoleHasPermission(tc.role, tc.perm), "%s / %s", tc.role, tc.perm)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleViewer))
	assert.False(t, entity.ValidRole("bodeguero"))
	assert.False(t, entity.ValidRole(""))
}

func TestPermissionsFor_DevuelveCopia(t *testing.T) {
	perms := entity.PermissionsFor(entity.RoleViewer)
	perms[0] = entity.PermUserManage
	assert.False(t, entity.RoleHasPermission(entity.RoleViewer, entity.PermUserManage))
}
