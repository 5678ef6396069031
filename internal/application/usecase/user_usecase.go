package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/otopia-pos/internal/application/auth"
	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios del POS.
type UserUseCase struct {
	users   repository.UserRepository
	outlets repository.OutletRepository
	shifts  repository.ShiftRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, outlets repository.OutletRepository, shifts repository.ShiftRepository) *UserUseCase {
	return &UserUseCase{users: users, outlets: outlets, shifts: shifts}
}

// GetEntity resuelve el usuario autenticado (nombre para bitácoras y ventas).
// NotFound si no existe; Forbidden si fue desactivado después de emitir el token.
func (uc *UserUseCase) GetEntity(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario", domain.ErrNotFound)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	return user, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// ListStaff kasir y teknisi activos (selector de técnico en la venta).
func (uc *UserUseCase) ListStaff(ctx context.Context) ([]dto.UserResponse, error) {
	return uc.list(ctx, repository.UserFilter{
		Roles:      []entity.Role{entity.RoleKasir, entity.RoleTeknisi},
		OnlyActive: true,
	})
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	return uc.list(ctx, repository.UserFilter{})
}

// Update modifica el perfil. Un cambio de outlet vuelve a copiar su nombre.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = role
	}
	if in.OutletID != nil {
		user.OutletID = *in.OutletID
		user.OutletName = ""
		if user.OutletID != "" {
			outlet, err := uc.outlets.GetByID(ctx, user.OutletID)
			if err != nil {
				return nil, err
			}
			if outlet == nil {
				return nil, fmt.Errorf("%w: outlet", domain.ErrNotFound)
			}
			user.OutletName = outlet.Name
		}
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// ResetPassword fija una nueva contraseña.
func (uc *UserUseCase) ResetPassword(ctx context.Context, id string, in dto.ResetPasswordRequest) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return uc.users.SetPassword(ctx, id, hash)
}

// Delete desactiva al usuario. No puede desactivarse a sí mismo ni a quien tiene un turno abierto.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return fmt.Errorf("%w: no puede eliminar su propio usuario", domain.ErrForbidden)
	}
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	open, err := uc.shifts.GetOpenByKasir(ctx, id)
	if err != nil {
		return err
	}
	if open != nil {
		return fmt.Errorf("%w: el usuario tiene un turno abierto", domain.ErrFailedPrecondition)
	}
	return uc.users.SetActive(ctx, id, false)
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario", domain.ErrNotFound)
	}
	return user, nil
}

func (uc *UserUseCase) list(ctx context.Context, f repository.UserFilter) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}
