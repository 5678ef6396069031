package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// ShiftFilter filtros de listado de turnos.
type ShiftFilter struct {
	KasirID string
	Status  string
	Limit   int
}

// ShiftRepository define el puerto de persistencia para Shift.
type ShiftRepository interface {
	// Create devuelve domain.ErrShiftAlreadyOpen si el kasir ya tiene un turno abierto.
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Shift, error)
	GetOpenByKasir(ctx context.Context, kasirID string) (*entity.Shift, error)
	// GetOpenByKasirForShare bloquea el turno en modo compartido: el cierre espera a las ventas en curso.
	GetOpenByKasirForShare(ctx context.Context, kasirID string) (*entity.Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]*entity.Shift, error)
	// AddCashMovement incrementa atómicamente cash_drop_total o petty_cash_total.
	// Devuelve domain.ErrShiftClosed si el turno ya no está abierto.
	AddCashMovement(ctx context.Context, shiftID string, amount decimal.Decimal, cashDrop bool) error
	Close(ctx context.Context, shift *entity.Shift) error
}

// PettyCashRepository bitácora de caja chica y retiros.
type PettyCashRepository interface {
	Create(ctx context.Context, log *entity.PettyCashLog) error
	ListByShift(ctx context.Context, shiftID string) ([]*entity.PettyCashLog, error)
}
