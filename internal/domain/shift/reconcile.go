// Package shift concentra la aritmética de cuadre de caja.
package shift

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// Reconciliation resultado del cuadre de un turno.
type Reconciliation struct {
	OpeningBalance   decimal.Decimal
	TotalCashSales   decimal.Decimal
	PettyCashTotal   decimal.Decimal
	CashDropTotal    decimal.Decimal
	ExpectedBalance  decimal.Decimal
	ByPaymentMethod  map[entity.PaymentMethod]decimal.Decimal
	TransactionCount int
}

// Reconcile recalcula el saldo esperado a partir de las transacciones reales del turno:
// esperado = apertura + ventas en efectivo - caja chica - retiros.
// Solo cuenta las transacciones cuyo ShiftID coincide con el turno.
func Reconcile(s *entity.Shift, txns []*entity.Transaction) Reconciliation {
	byMethod := make(map[entity.PaymentMethod]decimal.Decimal, len(entity.PaymentMethods))
	for _, m := range entity.PaymentMethods {
		byMethod[m] = decimal.Zero
	}
	count := 0
	for _, t := range txns {
		if t == nil || t.ShiftID != s.ID {
			continue
		}
		byMethod[t.PaymentMethod] = byMethod[t.PaymentMethod].Add(t.Total)
		count++
	}
	cash := byMethod[entity.PaymentCash]
	return Reconciliation{
		OpeningBalance:   s.OpeningBalance,
		TotalCashSales:   cash,
		PettyCashTotal:   s.PettyCashTotal,
		CashDropTotal:    s.CashDropTotal,
		ExpectedBalance:  ExpectedBalance(s.OpeningBalance, cash, s.PettyCashTotal, s.CashDropTotal),
		ByPaymentMethod:  byMethod,
		TransactionCount: count,
	}
}

// ExpectedBalance efectivo que debería haber en caja al cierre.
func ExpectedBalance(opening, cashSales, pettyCash, cashDrop decimal.Decimal) decimal.Decimal {
	return opening.Add(cashSales).Sub(pettyCash).Sub(cashDrop)
}

// Variance diferencia informativa entre lo contado y lo esperado; nunca bloquea el cierre.
func Variance(closing, expected decimal.Decimal) decimal.Decimal {
	return closing.Sub(expected)
}
