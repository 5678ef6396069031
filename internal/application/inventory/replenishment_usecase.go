package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
)

var idealFactor = decimal.NewFromFloat(1.5)

// LowStock devuelve los ítems con current_stock <= min_stock, con la cantidad sugerida de pedido
// y un ranking de prioridad por déficit relativo.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	items, err := uc.store.Inventory.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, item := range items {
		ideal := item.MaxStock
		if !ideal.IsPositive() {
			ideal = item.MinStock.Mul(idealFactor)
		}
		qty := ideal.Sub(item.CurrentStock)
		if qty.IsNegative() {
			qty = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			InventoryItemResponse: dto.ToInventoryItemResponse(item),
			IdealStock:            ideal,
			SuggestedOrderQty:     qty,
			EstimatedOrderCost:    qty.Mul(item.UnitCost),
		})
	}

	// Primero el mayor déficit relativo al mínimo; sin mínimo, el mayor déficit absoluto.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return deficitRatio(suggestions[i]).GreaterThan(deficitRatio(suggestions[j]))
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func deficitRatio(s dto.ReplenishmentSuggestionDTO) decimal.Decimal {
	deficit := s.MinStock.Sub(s.CurrentStock)
	if s.MinStock.IsPositive() {
		return deficit.Div(s.MinStock)
	}
	return deficit
}
