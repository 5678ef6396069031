package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
)

// WeightedAverageCost costo promedio ponderado tras una entrada de mercancía (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stock, cost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	sum := stock.Add(qtyIn)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(qtyIn.Mul(costIn))
	return num.Div(sum)
}

// ApplyDelta calcula el nuevo stock para un cambio con signo.
// Nunca permite un resultado negativo: devuelve rejectErr (el llamador decide la familia del error).
func ApplyDelta(previous, delta decimal.Decimal, rejectErr error) (decimal.Decimal, error) {
	next := previous.Add(delta)
	if next.IsNegative() {
		if rejectErr == nil {
			rejectErr = domain.ErrInsufficientStock
		}
		return previous, rejectErr
	}
	return next, nil
}
