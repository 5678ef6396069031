package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionRequest body para POST/PUT /api/promotions.
type PromotionRequest struct {
	Code          string           `json:"code" validate:"required,max=30"`
	Name          string           `json:"name" validate:"required,max=150"`
	Description   string           `json:"description" validate:"omitempty,max=500"`
	PromotionType string           `json:"promotion_type" validate:"required,oneof=percentage fixed_amount"`
	Value         decimal.Decimal  `json:"value" validate:"gt=0"`
	MinPurchase   decimal.Decimal  `json:"min_purchase" validate:"gte=0"`
	MaxDiscount   *decimal.Decimal `json:"max_discount"`
	StartDate     time.Time        `json:"start_date" validate:"required"`
	EndDate       time.Time        `json:"end_date" validate:"required"`
	UsageLimit    *int             `json:"usage_limit" validate:"omitempty,min=1"`
	IsActive      *bool            `json:"is_active"`
}

// PromotionResponse promoción en respuestas.
type PromotionResponse struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	PromotionType string           `json:"promotion_type"`
	Value         decimal.Decimal  `json:"value"`
	MinPurchase   decimal.Decimal  `json:"min_purchase"`
	MaxDiscount   *decimal.Decimal `json:"max_discount,omitempty"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	UsageCount    int              `json:"usage_count"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ValidatePromotionRequest body para /api/promotions/validate y /redeem.
type ValidatePromotionRequest struct {
	Code     string          `json:"code" validate:"required"`
	Subtotal decimal.Decimal `json:"subtotal" validate:"gte=0"`
}

// ValidatePromotionResponse descuento calculado.
type ValidatePromotionResponse struct {
	Promotion      PromotionResponse `json:"promotion"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	FinalAmount    decimal.Decimal   `json:"final_amount"`
}
