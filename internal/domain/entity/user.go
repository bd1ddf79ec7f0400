package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un operador del panel de almacén.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador
	CreatedAt    time.Time
}
