package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	// List filtra por nombre, teléfono o placa cuando search no está vacío.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// IncrementStats suma una visita y el monto de forma atómica (sin leer-modificar-escribir).
	IncrementStats(ctx context.Context, id string, spending decimal.Decimal) error
}

// MembershipRepository define el puerto de persistencia para Membership.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	GetByID(ctx context.Context, id string) (*entity.Membership, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Membership, error)
	// ListByCustomer en orden de creación.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Membership, error)
	List(ctx context.Context) ([]*entity.Membership, error)
	// ListEndingBetween membresías cuyo end_date cae en [from, to).
	ListEndingBetween(ctx context.Context, from, to time.Time) ([]*entity.Membership, error)
	SetEndDate(ctx context.Context, id string, end time.Time) error
	// RecordUse incrementa usage_count y fija last_used de forma atómica.
	RecordUse(ctx context.Context, id string, usedAt time.Time) (usageCount int, err error)
	SyncCustomerName(ctx context.Context, customerID, name string) error
	Delete(ctx context.Context, id string) error
}

// MembershipUsageRepository registros inmutables de canje.
type MembershipUsageRepository interface {
	// Create devuelve domain.ErrMembershipUsedToday si ya hay un canje ese día UTC.
	Create(ctx context.Context, u *entity.MembershipUsage) error
	ExistsSince(ctx context.Context, membershipID string, since time.Time) (bool, error)
	ListByMembership(ctx context.Context, membershipID string) ([]*entity.MembershipUsage, error)
	DeleteByMembership(ctx context.Context, membershipID string) error
}
