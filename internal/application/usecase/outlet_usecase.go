package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// OutletUseCase casos de uso para sucursales.
type OutletUseCase struct {
	store repository.Store
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(store repository.Store) *OutletUseCase {
	return &OutletUseCase{store: store}
}

// Create crea una nueva sucursal.
func (uc *OutletUseCase) Create(ctx context.Context, in dto.OutletRequest) (*dto.OutletResponse, error) {
	now := time.Now().UTC()
	o := &entity.Outlet{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		ManagerName: in.ManagerName,
		IsActive:    in.IsActive == nil || *in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.store.Outlets.Create(ctx, o); err != nil {
		return nil, err
	}
	out := dto.ToOutletResponse(o)
	return &out, nil
}

// GetByID obtiene una sucursal.
func (uc *OutletUseCase) GetByID(ctx context.Context, id string) (*dto.OutletResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToOutletResponse(o)
	return &out, nil
}

// List todas las sucursales.
func (uc *OutletUseCase) List(ctx context.Context) ([]dto.OutletResponse, error) {
	list, err := uc.store.Outlets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OutletResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOutletResponse(o))
	}
	return out, nil
}

// Update actualiza la sucursal; si cambia el nombre se sincroniza en sus usuarios.
func (uc *OutletUseCase) Update(ctx context.Context, id string, in dto.OutletRequest) (*dto.OutletResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	renamed := o.Name != in.Name
	o.Name = in.Name
	o.Address = in.Address
	o.Phone = in.Phone
	o.ManagerName = in.ManagerName
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	o.UpdatedAt = time.Now().UTC()
	if err := uc.store.Outlets.Update(ctx, o); err != nil {
		return nil, err
	}
	if renamed {
		if err := uc.store.Users.SyncOutletName(ctx, o.ID, o.Name); err != nil {
			return nil, err
		}
	}
	out := dto.ToOutletResponse(o)
	return &out, nil
}

// Delete elimina la sucursal si no tiene usuarios activos asignados.
func (uc *OutletUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	n, err := uc.store.Users.CountActiveByOutlet(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: la sucursal tiene %d usuarios activos", domain.ErrFailedPrecondition, n)
	}
	return uc.store.Outlets.Delete(ctx, id)
}

func (uc *OutletUseCase) get(ctx context.Context, id string) (*entity.Outlet, error) {
	o, err := uc.store.Outlets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: outlet", domain.ErrNotFound)
	}
	return o, nil
}
