package billing_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/billing"
	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var (
	kasir = &entity.User{ID: "k-1", FullName: "Budi", Role: entity.RoleKasir}
	otro  = &entity.User{ID: "k-2", FullName: "Sari", Role: entity.RoleKasir}
)

type recordingQueue struct {
	mu  sync.Mutex
	got []ports.Notification
}

func (q *recordingQueue) Enqueue(_ context.Context, n ports.Notification) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.got = append(q.got, n)
	return nil
}

type busyGuard struct{}

func (busyGuard) Acquire(context.Context, string, time.Duration) (bool, error) { return false, nil }
func (busyGuard) Release(context.Context, string) error                         { return nil }

type fixture struct {
	ctx    context.Context
	store  repository.Store
	uc     *billing.TransactionUseCase
	queue  *recordingQueue
	shampo string
	wash   string
	wax    string
}

func setup(t *testing.T, deps billing.Deps) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New().Repositories()
	q := &recordingQueue{}
	if deps.Queue == nil {
		deps.Queue = q
	}
	f := &fixture{ctx: ctx, store: store, queue: q}
	f.uc = billing.NewTransactionUseCase(store, deps, billing.Config{BusinessName: "OTOPIA", AutoReceipt: true}, zerolog.Nop())

	now := time.Now().UTC()
	f.shampo = "inv-shampoo"
	require.NoError(t, store.Inventory.Create(ctx, &entity.InventoryItem{
		ID: f.shampo, SKU: "SHP", Name: "Shampoo", Unit: "liter",
		CurrentStock: n("10"), MinStock: n("1"), IsActive: true, CreatedAt: now,
	}))
	require.NoError(t, store.Inventory.Create(ctx, &entity.InventoryItem{
		ID: "inv-wax", SKU: "WAX", Name: "Wax botol", Unit: "pcs",
		CurrentStock: n("3"), IsActive: true, CreatedAt: now,
	}))
	f.wash = "svc-wash"
	require.NoError(t, store.Services.Create(ctx, &entity.Service{
		ID: f.wash, Name: "Cuci Mobil", Price: n("50000"), CommissionRate: n("10"), IsActive: true,
		BOM: []entity.BOMLine{{InventoryID: f.shampo, InventoryName: "Shampoo", Quantity: n("0.5"), Unit: "liter"}},
	}))
	f.wax = "prd-wax"
	require.NoError(t, store.Products.Create(ctx, &entity.Product{
		ID: f.wax, Name: "Wax", Price: n("75000"), InventoryID: "inv-wax", IsActive: true,
	}))
	require.NoError(t, store.Shifts.Create(ctx, &entity.Shift{
		ID: "shift-1", KasirID: kasir.ID, KasirName: kasir.FullName,
		OpeningBalance: n("100000"), OpenedAt: now, Status: entity.ShiftStatusOpen,
	}))
	return f
}

func (f *fixture) washRequest(qty string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Items:           []dto.LineItemRequest{{ServiceID: f.wash, Name: "Cuci Mobil", Quantity: n(qty), Price: n("50000")}},
		PaymentMethod:   "cash",
		PaymentReceived: n("200000"),
	}
}

func stock(t *testing.T, f *fixture, id string) decimal.Decimal {
	t.Helper()
	it, err := f.store.Inventory.GetByID(f.ctx, id)
	require.NoError(t, err)
	return it.CurrentStock
}

func TestCreate_DescuentaBOMMultiplicadoPorCantidadYRegistraBitacora(t *testing.T) {
	f := setup(t, billing.Deps{})

	txn, replayed, err := f.uc.Create(f.ctx, kasir, f.washRequest("2"), "")
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.True(t, txn.Total.Equal(n("100000")))
	assert.True(t, txn.ChangeAmount.Equal(n("100000")))
	assert.True(t, txn.TotalCommission.Equal(n("10000")))
	assert.Equal(t, "shift-1", txn.ShiftID)

	assert.True(t, stock(t, f, f.shampo).Equal(n("9")), "10 - 0.5×2")

	logs, err := f.store.InventoryLogs.ListByItem(f.ctx, f.shampo, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, billing.ReasonSale, logs[0].Reason)
	assert.Equal(t, txn.ID, logs[0].ReferenceID)
	assert.True(t, logs[0].ChangeAmount.Equal(n("-1")))
}

func TestCreate_ProductoLigadoDescuentaCantidadDirecta(t *testing.T) {
	f := setup(t, billing.Deps{})
	req := dto.CreateTransactionRequest{
		Items:           []dto.LineItemRequest{{ProductID: f.wax, Name: "Wax", Quantity: n("2"), Price: n("75000")}},
		PaymentMethod:   "qr",
		PaymentReceived: n("150000"),
	}
	_, _, err := f.uc.Create(f.ctx, kasir, req, "")
	require.NoError(t, err)
	assert.True(t, stock(t, f, "inv-wax").Equal(n("1")))
}

func TestCreate_StockInsuficienteRevierteTodo(t *testing.T) {
	f := setup(t, billing.Deps{})
	req := dto.CreateTransactionRequest{
		Items:           []dto.LineItemRequest{{ProductID: f.wax, Name: "Wax", Quantity: n("5"), Price: n("75000")}},
		PaymentMethod:   "cash",
		PaymentReceived: n("375000"),
	}
	_, _, err := f.uc.Create(f.ctx, kasir, req, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, domain.ErrFailedPrecondition)

	assert.True(t, stock(t, f, "inv-wax").Equal(n("3")))
	list, err := f.store.Transactions.List(f.ctx, repository.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_PagoInsuficiente(t *testing.T) {
	f := setup(t, billing.Deps{})
	req := f.washRequest("1")
	req.PaymentReceived = n("49999")
	_, _, err := f.uc.Create(f.ctx, kasir, req, "")
	require.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, stock(t, f, f.shampo).Equal(n("10")))
}

func TestCreate_SinTurnoAbierto(t *testing.T) {
	f := setup(t, billing.Deps{})
	_, _, err := f.uc.Create(f.ctx, otro, f.washRequest("1"), "")
	assert.ErrorIs(t, err, domain.ErrNoOpenShift)
}

func TestCreate_ClienteSumaEstadisticasYEncolaRecibo(t *testing.T) {
	f := setup(t, billing.Deps{})
	require.NoError(t, f.store.Customers.Create(f.ctx, &entity.Customer{ID: "c-1", Name: "Andi", Phone: "08123"}))
	req := f.washRequest("1")
	req.CustomerID = "c-1"

	txn, _, err := f.uc.Create(f.ctx, kasir, req, "")
	require.NoError(t, err)
	assert.Equal(t, "Andi", txn.CustomerName)

	c, err := f.store.Customers.GetByID(f.ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalVisits)
	assert.True(t, c.TotalSpending.Equal(n("50000")))

	require.Len(t, f.queue.got, 1)
	assert.Equal(t, "08123", f.queue.got[0].Phone)
	assert.Contains(t, f.queue.got[0].Text, txn.InvoiceNumber)
}

func TestCreate_LlaveDeIdempotenciaDevuelveLaOriginal(t *testing.T) {
	f := setup(t, billing.Deps{})

	first, replayed, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "key-1")
	require.NoError(t, err)
	assert.False(t, replayed)

	second, replayed, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "key-1")
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, stock(t, f, f.shampo).Equal(n("9.5")), "solo un descuento")
}

func TestCreate_LlaveDeOtroKasirEsConflicto(t *testing.T) {
	f := setup(t, billing.Deps{})

	first, _, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "shared-key")
	require.NoError(t, err)

	got, replayed, err := f.uc.Create(f.ctx, otro, f.washRequest("1"), "shared-key")
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.False(t, replayed)
	assert.Nil(t, got)

	again, replayed, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "shared-key")
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, stock(t, f, f.shampo).Equal(n("9.5")), "solo un descuento")
}

func TestCreate_LlaveEnCursoEsConflicto(t *testing.T) {
	f := setup(t, billing.Deps{Idempotency: busyGuard{}})
	_, _, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "key-busy")
	require.ErrorIs(t, err, domain.ErrInProgress)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_FacturasConcurrentesUnicasYConsecutivas(t *testing.T) {
	f := setup(t, billing.Deps{})
	const total = 30
	require.NoError(t, f.store.Inventory.SetStock(f.ctx, f.shampo, n("1000"), decimal.Zero, nil))

	var wg sync.WaitGroup
	invoices := make(chan string, total)
	errs := make(chan error, total)
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn, _, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "")
			if err != nil {
				errs <- err
				return
			}
			invoices <- txn.InvoiceNumber
		}()
	}
	wg.Wait()
	close(invoices)
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	pattern := regexp.MustCompile(`^INV-\d{8}-\d{4}$`)
	seen := make(map[string]bool, total)
	for inv := range invoices {
		assert.Regexp(t, pattern, inv)
		assert.False(t, seen[inv], "duplicada %s", inv)
		seen[inv] = true
	}
	require.Len(t, seen, total)
	day := time.Now().UTC().Format("20060102")
	for i := 1; i <= total; i++ {
		assert.True(t, seen[fmt.Sprintf("INV-%s-%04d", day, i)], "falta el consecutivo %d", i)
	}
}

func TestDetail_KasirNoVeVentaAjena(t *testing.T) {
	f := setup(t, billing.Deps{})
	txn, _, err := f.uc.Create(f.ctx, kasir, f.washRequest("1"), "")
	require.NoError(t, err)

	_, err = f.uc.Detail(f.ctx, entity.Actor{UserID: otro.ID, Role: entity.RoleKasir}, txn.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.uc.Detail(f.ctx, entity.Actor{UserID: "m-1", Role: entity.RoleManager}, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.InvoiceNumber, got.InvoiceNumber)

	mine, err := f.uc.List(f.ctx, entity.Actor{UserID: otro.ID, Role: entity.RoleKasir}, dto.TransactionListQuery{})
	require.NoError(t, err)
	assert.Empty(t, mine)

	today, err := f.uc.Today(f.ctx, entity.Actor{UserID: kasir.ID, Role: entity.RoleKasir})
	require.NoError(t, err)
	assert.Len(t, today, 1)
}

func TestList_FechaInvalida(t *testing.T) {
	f := setup(t, billing.Deps{})
	_, err := f.uc.List(f.ctx, entity.Actor{UserID: "o", Role: entity.RoleOwner}, dto.TransactionListQuery{From: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
