package entity

import "time"

// Outlet sucursal del negocio.
type Outlet struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	ManagerName string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
