package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest body para POST /api/expenses.
type ExpenseRequest struct {
	Date          *time.Time      `json:"date"`
	Category      string          `json:"category" validate:"required,max=50"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	Description   string          `json:"description" validate:"omitempty,max=300"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,max=30"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedBy     string          `json:"created_by"`
}

// PayoutRequest body para POST /api/payouts.
type PayoutRequest struct {
	UserID string          `json:"user_id" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Date   *time.Time      `json:"date"`
	Notes  string          `json:"notes" validate:"omitempty,max=300"`
}

// PayoutResponse pago de comisión en respuestas.
type PayoutResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by"`
}

// LandingConfigDTO contenido de la landing pública.
type LandingConfigDTO struct {
	HeroTitle1       string    `json:"hero_title_1" validate:"max=100"`
	HeroTitle2       string    `json:"hero_title_2" validate:"max=100"`
	HeroSubtitle     string    `json:"hero_subtitle" validate:"max=300"`
	OpenHours        string    `json:"open_hours" validate:"max=50"`
	ContactPhone     string    `json:"contact_phone" validate:"max=30"`
	ContactAddress   string    `json:"contact_address" validate:"max=300"`
	ContactMapsURL   string    `json:"contact_maps_url" validate:"omitempty,url"`
	ContactInstagram string    `json:"contact_instagram" validate:"max=50"`
	UpdatedAt        time.Time `json:"updated_at"`
}
