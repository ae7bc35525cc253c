package entity

import "time"

// Roles válidos para User (conjunto cerrado).
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// ValidRole indica si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User representa un usuario del sistema. La identidad resuelta por request
// es {Username, Role}; el resto de la gestión de credenciales es colaborador externo.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, user
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
