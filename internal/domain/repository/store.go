package repository

import "context"

// TxRepos repositorios ligados a una misma transacción de base de datos.
type TxRepos struct {
	Users            UserRepository
	Services         ServiceRepository
	Products         ProductRepository
	Inventory        InventoryRepository
	InventoryLogs    InventoryLogRepository
	Customers        CustomerRepository
	Memberships      MembershipRepository
	MembershipUsages MembershipUsageRepository
	Shifts           ShiftRepository
	PettyCash        PettyCashRepository
	Transactions     TransactionRepository
	InvoiceCounters  InvoiceCounterRepository
	Promotions       PromotionRepository
	Expenses         ExpenseRepository
	Payouts          PayoutRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si devuelve nil, rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// Store agrupa todos los puertos de persistencia fuera de una transacción.
type Store struct {
	TxRepos
	Outlets   OutletRepository
	Landing   LandingConfigRepository
	Analytics AnalyticsRepository
	Tx        TxRunner
}
