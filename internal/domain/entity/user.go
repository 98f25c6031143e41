package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cajero"
)

// User operador del sistema. Origen de los actor IDs que viajan en los
// movimientos del ledger y en la auditoría.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt
	FullName     string
	Role         string
	Active       bool
	CreatedAt    time.Time
}
