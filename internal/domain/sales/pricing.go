// Package sales calcula totales, comisiones y numeración de facturas de una venta.
package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals resultado del cálculo de una venta.
type Totals struct {
	Items           []entity.LineItem
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	ChangeAmount    decimal.Decimal
	TotalCommission decimal.Decimal
}

// Price calcula subtotal, total y comisiones.
//
// total = subtotal: los descuentos ya vienen reflejados en el precio unitario o se resolvieron
// antes con una promoción. La comisión se calcula sobre el monto bruto de la línea
// (precio × cantidad × tasa/100), solo para servicios con tasa > 0.
// commissionRates mapea service_id -> tasa en porcentaje.
func Price(items []entity.LineItem, commissionRates map[string]decimal.Decimal, paymentReceived decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, fmt.Errorf("%w: la venta no tiene ítems", domain.ErrInvalidInput)
	}
	out := Totals{Items: make([]entity.LineItem, 0, len(items))}
	for _, it := range items {
		if (it.ServiceID == "") == (it.ProductID == "") {
			return Totals{}, fmt.Errorf("%w: cada ítem debe referenciar un servicio o un producto", domain.ErrInvalidInput)
		}
		if !it.Quantity.IsPositive() || it.Price.IsNegative() {
			return Totals{}, fmt.Errorf("%w: cantidad o precio inválido", domain.ErrInvalidInput)
		}
		it.Subtotal = it.Price.Mul(it.Quantity)
		it.CommissionAmount = decimal.Zero
		if it.IsService() {
			if rate, ok := commissionRates[it.ServiceID]; ok && rate.IsPositive() {
				it.CommissionAmount = it.Subtotal.Mul(rate).Div(hundred)
			}
		}
		out.Subtotal = out.Subtotal.Add(it.Subtotal)
		out.TotalCommission = out.TotalCommission.Add(it.CommissionAmount)
		out.Items = append(out.Items, it)
	}
	out.Total = out.Subtotal
	out.ChangeAmount = paymentReceived.Sub(out.Total)
	if out.ChangeAmount.IsNegative() {
		return Totals{}, domain.ErrInsufficientPayment
	}
	return out, nil
}

// InvoiceNumber formatea INV-YYYYMMDD-NNNN con el día UTC y el consecutivo diario (mínimo 4 dígitos).
func InvoiceNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", day.UTC().Format("20060102"), seq)
}

// InvoiceDay día UTC (medianoche) al que pertenece un instante; es la llave del contador diario.
func InvoiceDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
