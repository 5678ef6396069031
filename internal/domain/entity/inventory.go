package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem insumo o mercancía con control de stock.
// Invariante: CurrentStock nunca queda por debajo de 0.
type InventoryItem struct {
	ID               string
	SKU              string
	Name             string
	Category         string // chemicals, supplies, equipment_parts
	Unit             string // liter, kg, pcs
	CurrentStock     decimal.Decimal
	MinStock         decimal.Decimal
	MaxStock         decimal.Decimal
	UnitCost         decimal.Decimal
	Supplier         string
	LastPurchaseDate *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsLowStock stock actual en o por debajo del mínimo.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}

// Motivos estándar de los movimientos generados por el sistema.
const (
	StockReasonSale       = "sale"
	StockReasonMembership = "membership_usage"
)

// InventoryLog registro inmutable de un cambio de stock. Nunca se actualiza ni se borra.
type InventoryLog struct {
	ID            string
	InventoryID   string
	InventoryName string
	ChangeAmount  decimal.Decimal // positivo entrada, negativo salida
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Reason        string
	ReferenceID   string // transacción o uso de membresía que originó el cambio
	UserID        string
	UserName      string
	CreatedAt     time.Time
}
