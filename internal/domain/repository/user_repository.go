package repository

import (
	"context"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	Roles      []entity.Role // vacío = todos
	OnlyActive bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create devuelve domain.ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SetPassword(ctx context.Context, id, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	// SyncOutletName actualiza el nombre desnormalizado en todos los usuarios del outlet.
	SyncOutletName(ctx context.Context, outletID, outletName string) error
	CountActiveByOutlet(ctx context.Context, outletID string) (int, error)
}

// OutletRepository define el puerto de persistencia para Outlet.
type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	GetByID(ctx context.Context, id string) (*entity.Outlet, error)
	List(ctx context.Context) ([]*entity.Outlet, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
	Delete(ctx context.Context, id string) error
}
