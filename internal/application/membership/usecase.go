// Package membership administra las membresías de clientes y el canje diario de lavado ilimitado.
package membership

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	dommembership "github.com/jhoicas/otopia-pos/internal/domain/membership"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// ReasonUsage motivo en la bitácora de inventario para los insumos de un canje.
const ReasonUsage = entity.StockReasonMembership

// Un canje equivale a una unidad del servicio.
var onePiece = decimal.NewFromInt(1)

// UseCase casos de uso de membresías.
type UseCase struct {
	store repository.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.Store, log zerolog.Logger) *UseCase {
	return &UseCase{store: store, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Create registra una membresía: fin = inicio + días del plan.
func (uc *UseCase) Create(ctx context.Context, in dto.MembershipRequest) (*dto.MembershipResponse, error) {
	mtype := entity.MembershipType(in.MembershipType)
	if !mtype.Valid() {
		return nil, fmt.Errorf("%w: membership_type desconocido", domain.ErrInvalidInput)
	}
	customer, err := uc.store.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente", domain.ErrNotFound)
	}
	now := uc.now()
	start := now
	if in.StartDate != nil {
		start = in.StartDate.UTC()
	}
	m := &entity.Membership{
		ID:             uuid.New().String(),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		MembershipType: mtype,
		StartDate:      start,
		EndDate:        dommembership.EndDate(start, mtype),
		Price:          in.Price,
		Notes:          in.Notes,
		CreatedAt:      now,
	}
	if err := uc.store.Memberships.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.ToMembershipResponse(m, now)
	return &out, nil
}

// List todas las membresías, con estado derivado.
func (uc *UseCase) List(ctx context.Context) ([]dto.MembershipResponse, error) {
	list, err := uc.store.Memberships.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.responses(list), nil
}

// ListByCustomer membresías de un cliente.
func (uc *UseCase) ListByCustomer(ctx context.Context, customerID string) ([]dto.MembershipResponse, error) {
	list, err := uc.store.Memberships.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return uc.responses(list), nil
}

// Get detalle con historial de canjes.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.MembershipResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	usages, err := uc.store.MembershipUsages.ListByMembership(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToMembershipResponse(m, uc.now())
	out.Usages = make([]dto.MembershipUsageResponse, 0, len(usages))
	for _, u := range usages {
		out.Usages = append(out.Usages, dto.ToMembershipUsageResponse(u))
	}
	return &out, nil
}

// Extend suma días a la fecha de fin guardada, también si la membresía ya venció.
func (uc *UseCase) Extend(ctx context.Context, id string, in dto.ExtendMembershipRequest) (*dto.MembershipResponse, error) {
	if in.Days <= 0 {
		return nil, fmt.Errorf("%w: days debe ser mayor que 0", domain.ErrInvalidInput)
	}
	now := uc.now()
	var updated *entity.Membership
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		m, err := repos.Memberships.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("%w: membresía", domain.ErrNotFound)
		}
		m.EndDate = m.EndDate.AddDate(0, 0, in.Days)
		if err := repos.Memberships.SetEndDate(ctx, id, m.EndDate); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToMembershipResponse(updated, now)
	return &out, nil
}

// Delete borra la membresía y su historial de canjes.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.MembershipUsages.DeleteByMembership(ctx, id); err != nil {
			return err
		}
		return repos.Memberships.Delete(ctx, id)
	})
}

// Use canjea el lavado del día para el cliente identificado por teléfono.
//
// Una sola transacción: bloquea la membresía, verifica que no se haya usado desde la medianoche
// UTC, registra el canje, incrementa usage_count y descuenta los insumos del servicio por el
// ledger. El índice único (membership_id, used_on) respalda la regla de un canje por día.
func (uc *UseCase) Use(ctx context.Context, kasir *entity.User, in dto.UseMembershipRequest) (*dto.UseMembershipResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	now := uc.now()

	// ── 1. Cliente ──
	customer, err := uc.store.Customers.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: no hay cliente con el teléfono %s", domain.ErrNotFound, phone)
	}

	var out *dto.UseMembershipResponse
	err = uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		// ── 2. Membresía elegible ──
		list, err := repos.Memberships.ListByCustomer(ctx, customer.ID)
		if err != nil {
			return err
		}
		eligible := dommembership.Redeemable(list, now)
		if eligible == nil {
			return domain.ErrNoEligibleMembership
		}
		m, err := repos.Memberships.GetForUpdate(ctx, eligible.ID)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("%w: membresía", domain.ErrNotFound)
		}

		// ── 3. Un canje por membresía por día UTC ──
		used, err := repos.MembershipUsages.ExistsSince(ctx, m.ID, dommembership.StartOfDayUTC(now))
		if err != nil {
			return err
		}
		if used {
			return domain.ErrMembershipUsedToday
		}

		// ── 4. Servicio ──
		svc, err := repos.Services.GetByID(ctx, in.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return fmt.Errorf("%w: servicio", domain.ErrNotFound)
		}

		// ── 5. Canje y contador ──
		usage := &entity.MembershipUsage{
			ID:           uuid.New().String(),
			MembershipID: m.ID,
			CustomerID:   customer.ID,
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			KasirID:      kasir.ID,
			KasirName:    kasir.FullName,
			UsedAt:       now,
		}
		if err := repos.MembershipUsages.Create(ctx, usage); err != nil {
			return err
		}
		count, err := repos.Memberships.RecordUse(ctx, m.ID, now)
		if err != nil {
			return err
		}

		// ── 6. Insumos ──
		if err := inventory.DeductBOM(ctx, repos, svc, onePiece, inventory.StockChange{
			Reason:      ReasonUsage,
			ReferenceID: usage.ID,
			UserID:      kasir.ID,
			UserName:    kasir.FullName,
		}, now); err != nil {
			return err
		}

		// ── 7. Resumen ──
		out = &dto.UseMembershipResponse{
			CustomerName:   customer.Name,
			ServiceName:    svc.Name,
			MembershipType: string(m.MembershipType),
			DaysRemaining:  dommembership.DaysRemaining(m.EndDate, now),
			UsageCount:     count,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("customer", out.CustomerName).Str("service", out.ServiceName).Int("usage_count", out.UsageCount).Msg("membresía canjeada")
	return out, nil
}

// Check consulta pública por teléfono.
func (uc *UseCase) Check(ctx context.Context, phone string) (*dto.CheckMembershipResponse, error) {
	customer, err := uc.store.Customers.GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente", domain.ErrNotFound)
	}
	list, err := uc.store.Memberships.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CheckMembershipResponse{CustomerName: customer.Name, Memberships: uc.responses(list)}, nil
}

func (uc *UseCase) get(ctx context.Context, id string) (*entity.Membership, error) {
	m, err := uc.store.Memberships.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: membresía", domain.ErrNotFound)
	}
	return m, nil
}

func (uc *UseCase) responses(list []*entity.Membership) []dto.MembershipResponse {
	now := uc.now()
	out := make([]dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMembershipResponse(m, now))
	}
	return out
}
