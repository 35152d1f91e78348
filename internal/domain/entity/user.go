package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, manager, viewer
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserFilter criterios del listado de usuarios. ID exacto; Search sobre email y nombre.
type UserFilter struct {
	ID     string
	Search string
}
