package entity

import "time"

// Roles de usuario dentro de una organización.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero" // opera bodega: movimientos y traslados
	RoleVendedor  = "vendedor"  // solo lectura de stock y reportes
)

// User usuario de la aplicación, pertenece a una organización.
type User struct {
	ID           string
	OrgID        string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | bodeguero | vendedor
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
