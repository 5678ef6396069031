package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest body para POST/PUT /api/inventory.
// CurrentStock solo se usa al crear; después el stock cambia únicamente con /adjust.
type InventoryItemRequest struct {
	SKU          string          `json:"sku" validate:"required,max=50"`
	Name         string          `json:"name" validate:"required,max=150"`
	Category     string          `json:"category" validate:"omitempty,max=50"`
	Unit         string          `json:"unit" validate:"required,max=20"`
	CurrentStock decimal.Decimal `json:"current_stock" validate:"gte=0"`
	MinStock     decimal.Decimal `json:"min_stock" validate:"gte=0"`
	MaxStock     decimal.Decimal `json:"max_stock" validate:"gte=0"`
	UnitCost     decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	Supplier     string          `json:"supplier" validate:"omitempty,max=150"`
	IsActive     *bool           `json:"is_active"`
}

// InventoryItemResponse ítem de inventario en respuestas.
type InventoryItemResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	Unit             string          `json:"unit"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	MinStock         decimal.Decimal `json:"min_stock"`
	MaxStock         decimal.Decimal `json:"max_stock"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	Supplier         string          `json:"supplier,omitempty"`
	LastPurchaseDate *time.Time      `json:"last_purchase_date,omitempty"`
	IsLowStock       bool            `json:"is_low_stock"`
	IsActive         bool            `json:"is_active"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AdjustStockRequest body para POST /api/inventory/:id/adjust.
// UnitCost opcional en entradas: recalcula el costo promedio ponderado.
type AdjustStockRequest struct {
	Amount   decimal.Decimal  `json:"amount" validate:"gt=0"`
	Type     string           `json:"type" validate:"required,oneof=add subtract"`
	Reason   string           `json:"reason" validate:"required,max=200"`
	UnitCost *decimal.Decimal `json:"unit_cost"`
}

// InventoryLogResponse entrada de la bitácora de stock.
type InventoryLogResponse struct {
	ID            string          `json:"id"`
	InventoryID   string          `json:"inventory_id"`
	InventoryName string          `json:"inventory_name"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	Reason        string          `json:"reason"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReplenishmentSuggestionDTO ítem en o bajo su mínimo, con la cantidad sugerida para reponer.
type ReplenishmentSuggestionDTO struct {
	InventoryItemResponse
	IdealStock         decimal.Decimal `json:"ideal_stock"`          // max_stock, o min_stock * 1.5 si no hay máximo
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	Priority           int             `json:"priority"`             // 1 = más urgente
}
