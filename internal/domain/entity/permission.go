package entity

// Permission identifica una acción sobre un recurso ("recurso:acción").
type Permission string

const (
	PermBranchRead      Permission = "branch:read"
	PermBranchEdit      Permission = "branch:edit"
	PermBranchDelete    Permission = "branch:delete"
	PermWarehouseRead   Permission = "warehouse:read"
	PermWarehouseEdit   Permission = "warehouse:edit"
	PermWarehouseDelete Permission = "warehouse:delete"
	PermAssetRead       Permission = "asset:read"
	PermAssetEdit       Permission = "asset:edit"
	PermAssetDelete     Permission = "asset:delete"
	PermPrintBarcode    Permission = "asset:print"
	PermUserManage      Permission = "user:manage"
	PermStatsRead       Permission = "stats:read"
)

var readPermissions = []Permission{PermBranchRead, PermWarehouseRead, PermAssetRead}

var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		PermBranchRead, PermBranchEdit, PermBranchDelete,
		PermWarehouseRead, PermWarehouseEdit, PermWarehouseDelete,
		PermAssetRead, PermAssetEdit, PermAssetDelete,
		PermPrintBarcode, PermUserManage, PermStatsRead,
	},
	RoleManager: append([]Permission{PermBranchEdit, PermWarehouseEdit, PermAssetEdit, PermPrintBarcode}, readPermissions...),
	RoleViewer:  readPermissions,
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// RoleHasPermission indica si el rol concede el permiso. Un rol desconocido no concede nada.
func RoleHasPermission(role string, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsFor devuelve una copia de los permisos del rol.
func PermissionsFor(role string) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
