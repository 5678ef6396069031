package shift_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/shift"
)

func n(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func txn(shiftID string, method entity.PaymentMethod, total int64) *entity.Transaction {
	return &entity.Transaction{ShiftID: shiftID, PaymentMethod: method, Total: n(total)}
}

func TestReconcile_AperturaMasVentaEnEfectivo(t *testing.T) {
	s := &entity.Shift{ID: "s1", OpeningBalance: n(100000)}

	r := shift.Reconcile(s, []*entity.Transaction{txn("s1", entity.PaymentCash, 50000)})

	assert.True(t, r.ExpectedBalance.Equal(n(150000)), "esperado 150000, obtenido %s", r.ExpectedBalance)
	assert.True(t, shift.Variance(n(150000), r.ExpectedBalance).IsZero())
}

func TestReconcile_SoloEfectivoAfectaElSaldoEsperado(t *testing.T) {
	s := &entity.Shift{ID: "s1", OpeningBalance: n(200000), PettyCashTotal: n(15000), CashDropTotal: n(100000)}
	txns := []*entity.Transaction{
		txn("s1", entity.PaymentCash, 75000),
		txn("s1", entity.PaymentCard, 120000),
		txn("s1", entity.PaymentQR, 60000),
		txn("s1", entity.PaymentSubscription, 0),
		txn("otro-turno", entity.PaymentCash, 999999),
	}

	r := shift.Reconcile(s, txns)

	// 200000 + 75000 - 15000 - 100000
	assert.True(t, r.ExpectedBalance.Equal(n(160000)), "obtenido %s", r.ExpectedBalance)
	assert.True(t, r.TotalCashSales.Equal(n(75000)))
	assert.True(t, r.ByPaymentMethod[entity.PaymentCard].Equal(n(120000)))
	assert.True(t, r.ByPaymentMethod[entity.PaymentQR].Equal(n(60000)))
	assert.Equal(t, 4, r.TransactionCount, "la transacción de otro turno no cuenta")
}

func TestVariance_FaltanteEsNegativo(t *testing.T) {
	assert.True(t, shift.Variance(n(140000), n(150000)).Equal(n(-10000)))
}
