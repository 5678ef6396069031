package entity

import "time"

// Role rol de un usuario del POS.
type Role string

// Roles válidos para User.
const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleKasir   Role = "kasir"
	RoleTeknisi Role = "teknisi"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleKasir, RoleTeknisi:
		return true
	}
	return false
}

// CanManage owner y manager administran catálogo, inventario, promociones y personal.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleManager
}

// User representa un usuario del sistema. Nunca se borra físicamente: se desactiva.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash
	FullName     string
	Email        string
	Phone        string
	Role         Role
	OutletID     string
	OutletName   string // copia desnormalizada de Outlet.Name; se sincroniza al renombrar
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identidad de quien invoca una operación (viene del token).
type Actor struct {
	UserID string
	Role   Role
}

// IsKasir el rol de menor privilegio en ventas: solo ve lo propio.
func (a Actor) IsKasir() bool { return a.Role == RoleKasir }
