package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newTxRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func newTxRepos(q Querier) repository.TxRepos {
	return repository.TxRepos{
		Users:            NewUserRepository(q),
		Services:         NewServiceRepository(q),
		Products:         NewProductRepository(q),
		Inventory:        NewInventoryRepository(q),
		InventoryLogs:    NewInventoryLogRepository(q),
		Customers:        NewCustomerRepository(q),
		Memberships:      NewMembershipRepository(q),
		MembershipUsages: NewMembershipUsageRepository(q),
		Shifts:           NewShiftRepository(q),
		PettyCash:        NewPettyCashRepository(q),
		Transactions:     NewTransactionRepository(q),
		InvoiceCounters:  NewInvoiceCounterRepository(q),
		Promotions:       NewPromotionRepository(q),
		Expenses:         NewExpenseRepository(q),
		Payouts:          NewPayoutRepository(q),
	}
}

// NewStore arma el Store completo sobre el pool.
func NewStore(pool *pgxpool.Pool) repository.Store {
	return repository.Store{
		TxRepos:   newTxRepos(pool),
		Outlets:   NewOutletRepository(pool),
		Landing:   NewLandingRepository(pool),
		Analytics: NewAnalyticsRepository(pool),
		Tx:        NewTxRunner(pool),
	}
}
