package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashDenominationDTO desglose de billetes y monedas.
type CashDenominationDTO struct {
	D100k int             `json:"d100k" validate:"gte=0"`
	D50k  int             `json:"d50k" validate:"gte=0"`
	D20k  int             `json:"d20k" validate:"gte=0"`
	D10k  int             `json:"d10k" validate:"gte=0"`
	D5k   int             `json:"d5k" validate:"gte=0"`
	D2k   int             `json:"d2k" validate:"gte=0"`
	D1k   int             `json:"d1k" validate:"gte=0"`
	Coins decimal.Decimal `json:"coins" validate:"gte=0"`
	Total decimal.Decimal `json:"total" validate:"gte=0"`
}

// OpenShiftRequest body para POST /api/shifts/open.
// KasirID vacío = el usuario autenticado.
type OpenShiftRequest struct {
	KasirID              string               `json:"kasir_id"`
	OpeningBalance       decimal.Decimal      `json:"opening_balance" validate:"gte=0"`
	OpeningDenominations *CashDenominationDTO `json:"opening_denominations"`
}

// CashMovementRequest body para POST /api/shifts/:id/cash-movements.
type CashMovementRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Category    string          `json:"category" validate:"required,max=50"`
	Description string          `json:"description" validate:"omitempty,max=300"`
}

// CloseShiftRequest body para POST /api/shifts/:id/close.
type CloseShiftRequest struct {
	ClosingBalance       decimal.Decimal      `json:"closing_balance" validate:"gte=0"`
	ClosingDenominations *CashDenominationDTO `json:"closing_denominations"`
	Notes                string               `json:"notes" validate:"omitempty,max=500"`
}

// ShiftResponse turno en respuestas.
type ShiftResponse struct {
	ID                   string               `json:"id"`
	KasirID              string               `json:"kasir_id"`
	KasirName            string               `json:"kasir_name"`
	OpeningBalance       decimal.Decimal      `json:"opening_balance"`
	OpeningDenominations *CashDenominationDTO `json:"opening_denominations,omitempty"`
	ClosingBalance       *decimal.Decimal     `json:"closing_balance,omitempty"`
	ClosingDenominations *CashDenominationDTO `json:"closing_denominations,omitempty"`
	PettyCashTotal       decimal.Decimal      `json:"petty_cash_total"`
	CashDropTotal        decimal.Decimal      `json:"cash_drop_total"`
	ExpectedBalance      *decimal.Decimal     `json:"expected_balance,omitempty"`
	Variance             *decimal.Decimal     `json:"variance,omitempty"`
	OpenedAt             time.Time            `json:"opened_at"`
	ClosedAt             *time.Time           `json:"closed_at,omitempty"`
	Status               string               `json:"status"`
	Notes                string               `json:"notes,omitempty"`
}

// CurrentShiftResponse turno abierto o {"shift": null}.
type CurrentShiftResponse struct {
	Shift *ShiftResponse `json:"shift"`
}

// PettyCashLogResponse movimiento de caja.
type PettyCashLogResponse struct {
	ID            string          `json:"id"`
	ShiftID       string          `json:"shift_id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	CreatedByID   string          `json:"created_by_id"`
	CreatedByName string          `json:"created_by_name"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ShiftSummaryResponse cuadre previo al cierre.
type ShiftSummaryResponse struct {
	Shift            ShiftResponse              `json:"shift"`
	TotalCashSales   decimal.Decimal            `json:"total_cash_sales"`
	ExpectedBalance  decimal.Decimal            `json:"expected_balance"`
	ByPaymentMethod  map[string]decimal.Decimal `json:"by_payment_method"`
	TransactionCount int                        `json:"transaction_count"`
	PettyCashLogs    []PettyCashLogResponse     `json:"petty_cash_logs"`
}

// ShiftDetailsResponse turno con sus ventas y movimientos de caja.
type ShiftDetailsResponse struct {
	Shift         ShiftResponse          `json:"shift"`
	Transactions  []TransactionResponse  `json:"transactions"`
	PettyCashLogs []PettyCashLogResponse `json:"petty_cash_logs"`
}
