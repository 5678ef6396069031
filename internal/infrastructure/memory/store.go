// Package memory implementa todos los puertos de persistencia en memoria.
// Se usa en pruebas y con STORE_DRIVER=memory para demos locales.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// data estado completo del almacén. Los mapas guardan valores, nunca punteros compartidos con el llamador.
type data struct {
	users           map[string]entity.User
	outlets         map[string]entity.Outlet
	services        map[string]entity.Service
	products        map[string]entity.Product
	inventory       map[string]entity.InventoryItem
	inventoryLogs   []entity.InventoryLog
	customers       map[string]entity.Customer
	memberships     map[string]entity.Membership
	usages          []entity.MembershipUsage
	shifts          map[string]entity.Shift
	pettyCash       []entity.PettyCashLog
	transactions    map[string]entity.Transaction
	invoiceCounters map[string]int64
	promotions      map[string]entity.Promotion
	expenses        map[string]entity.Expense
	payouts         []entity.CommissionPayout
	landing         *entity.LandingConfig
}

func newData() *data {
	return &data{
		users:           map[string]entity.User{},
		outlets:         map[string]entity.Outlet{},
		services:        map[string]entity.Service{},
		products:        map[string]entity.Product{},
		inventory:       map[string]entity.InventoryItem{},
		customers:       map[string]entity.Customer{},
		memberships:     map[string]entity.Membership{},
		shifts:          map[string]entity.Shift{},
		transactions:    map[string]entity.Transaction{},
		invoiceCounters: map[string]int64{},
		promotions:      map[string]entity.Promotion{},
		expenses:        map[string]entity.Expense{},
	}
}

// clone copia profunda para que una transacción fallida no deje rastro.
func (d *data) clone() *data {
	c := &data{
		users:           cloneMap(d.users),
		outlets:         cloneMap(d.outlets),
		services:        make(map[string]entity.Service, len(d.services)),
		products:        cloneMap(d.products),
		inventory:       cloneMap(d.inventory),
		inventoryLogs:   slices.Clone(d.inventoryLogs),
		customers:       cloneMap(d.customers),
		memberships:     cloneMap(d.memberships),
		usages:          slices.Clone(d.usages),
		shifts:          cloneMap(d.shifts),
		pettyCash:       slices.Clone(d.pettyCash),
		transactions:    make(map[string]entity.Transaction, len(d.transactions)),
		invoiceCounters: cloneMap(d.invoiceCounters),
		promotions:      cloneMap(d.promotions),
		expenses:        cloneMap(d.expenses),
		payouts:         slices.Clone(d.payouts),
	}
	for k, v := range d.services {
		v.BOM = slices.Clone(v.BOM)
		c.services[k] = v
	}
	for k, v := range d.transactions {
		v.Items = slices.Clone(v.Items)
		c.transactions[k] = v
	}
	if d.landing != nil {
		l := *d.landing
		c.landing = &l
	}
	return c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store almacén en memoria protegido por un único mutex.
type Store struct {
	mu sync.Mutex
	d  *data
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{d: newData()}
}

// Close no libera nada; existe para compartir el ciclo de vida con el pool de Postgres.
func (s *Store) Close() {}

// base acceso al estado: dentro de una transacción usa la copia (el mutex ya está tomado),
// fuera de ella toma el mutex en cada operación.
type base struct {
	st *Store
	tx *data
}

func (b base) read(fn func(d *data)) {
	if b.tx != nil {
		fn(b.tx)
		return
	}
	b.st.mu.Lock()
	defer b.st.mu.Unlock()
	fn(b.st.d)
}

func (b base) write(fn func(d *data) error) error {
	if b.tx != nil {
		return fn(b.tx)
	}
	b.st.mu.Lock()
	defer b.st.mu.Unlock()
	return fn(b.st.d)
}

func (s *Store) repos(tx *data) repository.TxRepos {
	b := base{st: s, tx: tx}
	return repository.TxRepos{
		Users:            &UserRepository{b},
		Services:         &ServiceRepository{b},
		Products:         &ProductRepository{b},
		Inventory:        &InventoryRepository{b},
		InventoryLogs:    &InventoryLogRepository{b},
		Customers:        &CustomerRepository{b},
		Memberships:      &MembershipRepository{b},
		MembershipUsages: &MembershipUsageRepository{b},
		Shifts:           &ShiftRepository{b},
		PettyCash:        &PettyCashRepository{b},
		Transactions:     &TransactionRepository{b},
		InvoiceCounters:  &InvoiceCounterRepository{b},
		Promotions:       &PromotionRepository{b},
		Expenses:         &ExpenseRepository{b},
		Payouts:          &PayoutRepository{b},
	}
}

// Repositories devuelve el Store completo de puertos respaldado por este almacén.
func (s *Store) Repositories() repository.Store {
	b := base{st: s}
	return repository.Store{
		TxRepos:   s.repos(nil),
		Outlets:   &OutletRepository{b},
		Landing:   &LandingConfigRepository{b},
		Analytics: &AnalyticsRepository{b},
		Tx:        &TxRunner{st: s},
	}
}

// TxRunner ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
// Las transacciones quedan serializadas por el mutex del almacén.
type TxRunner struct {
	st *Store
}

var _ repository.TxRunner = (*TxRunner)(nil)

// Run implementa repository.TxRunner.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	snapshot := r.st.d.clone()
	if err := fn(r.st.repos(snapshot)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.st.d = snapshot
	return nil
}

func ptr[T any](v T) *T { return &v }
