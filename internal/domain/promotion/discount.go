// Package promotion valida códigos promocionales y calcula el descuento.
package promotion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Validate aplica, en orden, la ventana de vigencia, el límite de uso y la compra mínima,
// y devuelve el descuento. No modifica la promoción.
// p debe estar activa; el llamador resuelve la búsqueda por código (NotFound si no existe o está inactiva).
func Validate(p *entity.Promotion, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if p == nil || !p.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	now = now.UTC()
	if now.Before(p.StartDate.UTC()) {
		return decimal.Zero, domain.ErrPromotionNotStarted
	}
	if now.After(p.EndDate.UTC()) {
		return decimal.Zero, domain.ErrPromotionExpired
	}
	if p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit {
		return decimal.Zero, domain.ErrPromotionExhausted
	}
	if subtotal.LessThan(p.MinPurchase) {
		return decimal.Zero, domain.ErrBelowMinPurchase
	}
	return Discount(p, subtotal), nil
}

// Discount monto fijo o porcentaje (con tope opcional); nunca mayor que el subtotal.
func Discount(p *entity.Promotion, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch p.PromotionType {
	case entity.PromotionFixedAmount:
		discount = p.Value
	case entity.PromotionPercentage:
		discount = subtotal.Mul(p.Value).Div(hundred)
		if p.MaxDiscount != nil && discount.GreaterThan(*p.MaxDiscount) {
			discount = *p.MaxDiscount
		}
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount
}
