package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // ADMIN, MANAGER, STAFF
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
