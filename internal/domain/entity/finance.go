package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutExpenseCategory categoría con la que cada pago de comisión se registra también como gasto.
const PayoutExpenseCategory = "Gaji & Komisi"

// Expense gasto operativo.
type Expense struct {
	ID            string
	Date          time.Time
	Category      string
	Amount        decimal.Decimal
	Description   string
	PaymentMethod string // transfer, cash...
	CreatedBy     string
}

// CommissionPayout pago de comisiones a un técnico/kasir.
type CommissionPayout struct {
	ID        string
	UserID    string
	UserName  string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedBy string
}

// LandingConfig contenido editable de la landing pública (registro único).
type LandingConfig struct {
	HeroTitle1       string
	HeroTitle2       string
	HeroSubtitle     string
	OpenHours        string
	ContactPhone     string
	ContactAddress   string
	ContactMapsURL   string
	ContactInstagram string
	UpdatedAt        time.Time
}

// DefaultLandingConfig valores iniciales cuando aún no se ha guardado ninguno.
func DefaultLandingConfig() LandingConfig {
	return LandingConfig{
		HeroTitle1:       "Experience the",
		HeroTitle2:       "Ultimate Shine",
		HeroSubtitle:     "Premium car wash & auto detailing service di Semarang.",
		OpenHours:        "08:00 - 18:00",
		ContactPhone:     "0822-2702-5335",
		ContactAddress:   "Jl. Sukun Raya No.47C, Banyumanik, Semarang",
		ContactMapsURL:   "https://maps.google.com/?q=OTOPIA+Semarang",
		ContactInstagram: "@otopia.semarang",
	}
}
