package repository

import (
	"context"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// TransactionFilter filtros de listado; los campos vacíos no filtran.
type TransactionFilter struct {
	KasirID    string
	CustomerID string
	ShiftID    string
	From       *time.Time
	To         *time.Time
	Limit      int
}

// TransactionRepository define el puerto de persistencia para Transaction.
// Las ventas son inmutables: no hay Update ni Delete.
type TransactionRepository interface {
	// Create devuelve domain.ErrDuplicate si la llave de idempotencia o el número de factura ya existen.
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Transaction, error)
	// List más recientes primero.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
	ListByShift(ctx context.Context, shiftID string) ([]*entity.Transaction, error)
}

// InvoiceCounterRepository contador atómico por día UTC para la numeración de facturas.
type InvoiceCounterRepository interface {
	// Next devuelve el siguiente consecutivo del día (el primero es 1).
	Next(ctx context.Context, day time.Time) (int64, error)
	// PurgeBefore elimina contadores anteriores a day; devuelve cuántos borró.
	PurgeBefore(ctx context.Context, day time.Time) (int64, error)
}
