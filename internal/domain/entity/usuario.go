package entity

import "time"

// Roles de usuario.
const (
	RolAdmin      = "admin"
	RolAlmacenero = "almacenero"
	RolVendedor   = "vendedor"
)

// Usuario representa un usuario del sistema. El motor de kardex solo necesita
// su identidad (campo Usuario) como actor de los movimientos.
type Usuario struct {
	ID           string
	Usuario      string // nombre de login, único
	Nombre       string
	PasswordHash string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
