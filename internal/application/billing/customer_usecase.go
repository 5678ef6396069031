package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	store repository.Store
	now   func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.Store) *CustomerUseCase {
	return &CustomerUseCase{store: store, now: func() time.Time { return time.Now().UTC() }}
}

// Create crea un nuevo cliente. Un teléfono repetido es conflicto.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	phone := normalizePhone(in.Phone)
	if strings.TrimSpace(in.Name) == "" || phone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.store.Customers.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cliente con el teléfono %s", domain.ErrDuplicate, phone)
	}
	now := uc.now()
	c := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		Phone:         phone,
		Email:         in.Email,
		VehicleNumber: strings.ToUpper(strings.TrimSpace(in.VehicleNumber)),
		VehicleType:   in.VehicleType,
		TotalSpending: decimal.Zero,
		JoinDate:      now,
		UpdatedAt:     now,
	}
	if err := uc.store.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// Get cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// GetByPhone búsqueda exacta por teléfono.
func (uc *CustomerUseCase) GetByPhone(ctx context.Context, phone string) (*dto.CustomerResponse, error) {
	c, err := uc.store.Customers.GetByPhone(ctx, normalizePhone(phone))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente", domain.ErrNotFound)
	}
	out := dto.ToCustomerResponse(c)
	return &out, nil
}

// List clientes; search filtra por nombre, teléfono o placa.
func (uc *CustomerUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.store.Customers.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCustomerResponse(c))
	}
	return out, nil
}

// Update modifica los datos de contacto. Las estadísticas solo cambian con ventas.
// Un cambio de nombre se propaga a sus membresías.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	phone := normalizePhone(in.Phone)
	if phone != c.Phone {
		other, err := uc.store.Customers.GetByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != c.ID {
			return nil, fmt.Errorf("%w: ya existe un cliente con el teléfono %s", domain.ErrDuplicate, phone)
		}
	}
	renamed := c.Name != strings.TrimSpace(in.Name)
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = phone
	c.Email = in.Email
	c.VehicleNumber = strings.ToUpper(strings.TrimSpace(in.VehicleNumber))
	c.VehicleType = in.VehicleType
	c.UpdatedAt = uc.now()

	err = uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Customers.Update(ctx, c); err != nil {
			return err
		}
		if renamed {
			return repos.Memberships.SyncCustomerName(ctx, c.ID, c.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete borra el cliente. FailedPrecondition si tiene una membresía vigente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	ms, err := uc.store.Memberships.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	now := uc.now()
	for _, m := range ms {
		if !m.EndDate.Before(now) {
			return fmt.Errorf("%w: el cliente tiene una membresía vigente", domain.ErrFailedPrecondition)
		}
	}
	return uc.store.Customers.Delete(ctx, id)
}

// Transactions historial de compras del cliente.
func (uc *CustomerUseCase) Transactions(ctx context.Context, id string, limit int) ([]dto.TransactionResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	txns, err := uc.store.Transactions.List(ctx, repository.TransactionFilter{CustomerID: id, Limit: limit})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

func (uc *CustomerUseCase) get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.store.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: cliente", domain.ErrNotFound)
	}
	return c, nil
}

// normalizePhone quita espacios y guiones; el teléfono es llave de búsqueda.
func normalizePhone(p string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(p))
}
