package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMLine una línea de la lista de materiales: insumo consumido por cada unidad del servicio.
type BOMLine struct {
	InventoryID   string          `json:"inventory_id"`
	InventoryName string          `json:"inventory_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

// Service servicio de lavado/detallado. Se desactiva en lugar de borrarse.
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
	Category        string          // exterior, interior, detailing...
	CommissionRate  decimal.Decimal // porcentaje para el técnico (0-100)
	BOM             []BOMLine
	ImageURL        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product producto de venta directa, opcionalmente ligado a un ítem de inventario.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	Category      string
	InventoryID   string // vacío = sin control de stock
	ImageURL      string
	MinStockLevel int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
