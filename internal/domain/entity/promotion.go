package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromotionType forma de calcular el descuento.
type PromotionType string

const (
	PromotionPercentage  PromotionType = "percentage"
	PromotionFixedAmount PromotionType = "fixed_amount"
)

// Valid indica si el tipo es conocido.
func (t PromotionType) Valid() bool {
	return t == PromotionPercentage || t == PromotionFixedAmount
}

// Promotion código promocional con ventana de vigencia y límite de uso.
type Promotion struct {
	ID            string
	Code          string
	Name          string
	Description   string
	PromotionType PromotionType
	Value         decimal.Decimal
	MinPurchase   decimal.Decimal
	MaxDiscount   *decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	UsageLimit    *int
	UsageCount    int
	IsActive      bool
	CreatedAt     time.Time
}
