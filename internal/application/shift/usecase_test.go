package shift_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/shift"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var (
	kasir = &entity.User{ID: "k-1", FullName: "Budi", Role: entity.RoleKasir}
	otro  = &entity.User{ID: "k-2", FullName: "Sari", Role: entity.RoleKasir}
	owner = &entity.User{ID: "o-1", FullName: "Pak Owner", Role: entity.RoleOwner}
)

type fakeMetrics struct {
	closed   int
	variance decimal.Decimal
}

func (f *fakeMetrics) TransactionRecorded(entity.PaymentMethod, decimal.Decimal) {}
func (f *fakeMetrics) NotificationDelivered(string, error)                      {}
func (f *fakeMetrics) ShiftClosed(_ string, v decimal.Decimal) {
	f.closed++
	f.variance = v
}

func setup(t *testing.T) (*shift.UseCase, repository.Store, *fakeMetrics) {
	t.Helper()
	store := memory.New().Repositories()
	m := &fakeMetrics{}
	return shift.NewUseCase(store, nil, m, zerolog.Nop()), store, m
}

func sale(t *testing.T, store repository.Store, shiftID string, method entity.PaymentMethod, total string) {
	t.Helper()
	err := store.Transactions.Create(context.Background(), &entity.Transaction{
		ID:            shiftID + "-" + string(method) + "-" + total,
		InvoiceNumber: "INV-20260101-" + total,
		KasirID:       kasir.ID,
		ShiftID:       shiftID,
		Subtotal:      n(total),
		Total:         n(total),
		PaymentMethod: method,
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestCicloCompleto_SinDiferencia(t *testing.T) {
	ctx := context.Background()
	uc, store, m := setup(t)

	opened, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("100000")})
	require.NoError(t, err)
	sale(t, store, opened.ID, entity.PaymentCash, "50000")
	sale(t, store, opened.ID, entity.PaymentQR, "35000")

	summary, err := uc.Summary(ctx, kasir, opened.ID)
	require.NoError(t, err)
	assert.True(t, summary.TotalCashSales.Equal(n("50000")))
	assert.True(t, summary.ExpectedBalance.Equal(n("150000")))
	assert.True(t, summary.ByPaymentMethod["qr"].Equal(n("35000")))
	assert.Equal(t, 2, summary.TransactionCount)

	closed, err := uc.Close(ctx, kasir, opened.ID, dto.CloseShiftRequest{ClosingBalance: n("150000")})
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStatusClosed, closed.Status)
	require.NotNil(t, closed.ExpectedBalance)
	assert.True(t, closed.ExpectedBalance.Equal(n("150000")))
	assert.True(t, closed.Variance.IsZero())
	assert.NotNil(t, closed.ClosedAt)
	assert.Equal(t, 1, m.closed)

	current, err := uc.Current(ctx, kasir.ID)
	require.NoError(t, err)
	assert.Nil(t, current.Shift)
}

func TestCashMovements_CajaChicaYRetiroAjustanEsperado(t *testing.T) {
	ctx := context.Background()
	uc, store, m := setup(t)

	opened, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("200000")})
	require.NoError(t, err)
	sale(t, store, opened.ID, entity.PaymentCash, "80000")

	_, err = uc.AddCashMovement(ctx, kasir, opened.ID, dto.CashMovementRequest{Amount: n("20000"), Category: "Bensin"})
	require.NoError(t, err)
	_, err = uc.AddCashMovement(ctx, kasir, opened.ID, dto.CashMovementRequest{Amount: n("100000"), Category: entity.CashDropCategory})
	require.NoError(t, err)

	got, err := store.Shifts.GetByID(ctx, opened.ID)
	require.NoError(t, err)
	assert.True(t, got.PettyCashTotal.Equal(n("20000")))
	assert.True(t, got.CashDropTotal.Equal(n("100000")))

	closed, err := uc.Close(ctx, kasir, opened.ID, dto.CloseShiftRequest{ClosingBalance: n("155000")})
	require.NoError(t, err)
	assert.True(t, closed.ExpectedBalance.Equal(n("160000")))
	assert.True(t, closed.Variance.Equal(n("-5000")), "faltante %s", closed.Variance)
	assert.True(t, m.variance.Equal(n("-5000")))

	details, err := uc.Details(ctx, owner, opened.ID)
	require.NoError(t, err)
	assert.Len(t, details.PettyCashLogs, 2)
	assert.Len(t, details.Transactions, 1)
}

func TestOpen_SegundoTurnoAbiertoEsConflictoYTrasCerrarSePuedeReabrir(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)

	first, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("50000")})
	require.NoError(t, err)

	_, err = uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("50000")})
	require.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Close(ctx, kasir, first.ID, dto.CloseShiftRequest{ClosingBalance: n("50000")})
	require.NoError(t, err)

	second, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("70000")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestClose_TurnoYaCerrado(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	opened, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("10000")})
	require.NoError(t, err)
	_, err = uc.Close(ctx, kasir, opened.ID, dto.CloseShiftRequest{ClosingBalance: n("10000")})
	require.NoError(t, err)

	_, err = uc.Close(ctx, kasir, opened.ID, dto.CloseShiftRequest{ClosingBalance: n("10000")})
	assert.ErrorIs(t, err, domain.ErrShiftClosed)

	_, err = uc.AddCashMovement(ctx, kasir, opened.ID, dto.CashMovementRequest{Amount: n("1000"), Category: "Parkir"})
	assert.ErrorIs(t, err, domain.ErrShiftClosed)
}

func TestKasirNoOperaTurnoAjeno(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	opened, err := uc.Open(ctx, kasir, dto.OpenShiftRequest{OpeningBalance: n("10000")})
	require.NoError(t, err)

	_, err = uc.Close(ctx, otro, opened.ID, dto.CloseShiftRequest{ClosingBalance: n("10000")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Open(ctx, otro, dto.OpenShiftRequest{KasirID: kasir.ID, OpeningBalance: n("1")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.List(ctx, otro, "", "", 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCurrent_SinTurnoNoEsError(t *testing.T) {
	uc, _, _ := setup(t)
	got, err := uc.Current(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, got.Shift)
}
