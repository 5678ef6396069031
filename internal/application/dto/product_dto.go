package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMLineDTO línea de lista de materiales de un servicio.
type BOMLineDTO struct {
	InventoryID   string          `json:"inventory_id" validate:"required"`
	InventoryName string          `json:"inventory_name,omitempty"`
	Quantity      decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit          string          `json:"unit,omitempty"`
}

// ServiceRequest body para POST/PUT /api/services.
type ServiceRequest struct {
	Name            string          `json:"name" validate:"required,max=150"`
	Description     string          `json:"description" validate:"omitempty,max=1000"`
	Price           decimal.Decimal `json:"price" validate:"gte=0"`
	DurationMinutes int             `json:"duration_minutes" validate:"gte=0"`
	Category        string          `json:"category" validate:"omitempty,max=50"`
	CommissionRate  decimal.Decimal `json:"commission_rate" validate:"gte=0,lte=100"`
	BOM             []BOMLineDTO    `json:"bom" validate:"omitempty,dive"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
	IsActive        *bool           `json:"is_active"`
}

// ServiceResponse servicio en respuestas.
type ServiceResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        string          `json:"category,omitempty"`
	CommissionRate  decimal.Decimal `json:"commission_rate"`
	BOM             []BOMLineDTO    `json:"bom"`
	ImageURL        string          `json:"image_url,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ProductRequest body para POST/PUT /api/products.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,max=150"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	Price         decimal.Decimal `json:"price" validate:"gte=0"`
	Category      string          `json:"category" validate:"omitempty,max=50"`
	InventoryID   string          `json:"inventory_id"`
	ImageURL      string          `json:"image_url" validate:"omitempty,url"`
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	IsActive      *bool           `json:"is_active"`
}

// ProductResponse producto enriquecido con el stock del ítem de inventario ligado.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Category      string           `json:"category,omitempty"`
	InventoryID   string           `json:"inventory_id,omitempty"`
	Stock         *decimal.Decimal `json:"stock,omitempty"`
	Unit          string           `json:"unit,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	MinStockLevel int              `json:"min_stock_level"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
}
