package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del turno de caja.
const (
	ShiftStatusOpen   = "open"
	ShiftStatusClosed = "closed"
)

// CashDropCategory categoría reservada: el retiro de efectivo a caja fuerte acumula en CashDropTotal.
// Cualquier otra categoría acumula en PettyCashTotal.
const CashDropCategory = "Cash Drop"

// CashDenomination desglose de billetes y monedas contados en caja.
type CashDenomination struct {
	D100k int             `json:"d100k"`
	D50k  int             `json:"d50k"`
	D20k  int             `json:"d20k"`
	D10k  int             `json:"d10k"`
	D5k   int             `json:"d5k"`
	D2k   int             `json:"d2k"`
	D1k   int             `json:"d1k"`
	Coins decimal.Decimal `json:"coins"`
	Total decimal.Decimal `json:"total"`
}

// Shift sesión de caja de un kasir, de la apertura al cierre.
// Invariante: como máximo un turno abierto por kasir.
type Shift struct {
	ID                   string
	KasirID              string
	KasirName            string
	OpeningBalance       decimal.Decimal
	OpeningDenominations *CashDenomination
	ClosingBalance       *decimal.Decimal
	ClosingDenominations *CashDenomination
	PettyCashTotal       decimal.Decimal
	CashDropTotal        decimal.Decimal
	ExpectedBalance      *decimal.Decimal
	Variance             *decimal.Decimal
	OpenedAt             time.Time
	ClosedAt             *time.Time
	Status               string
	Notes                string
}

// IsOpen indica si el turno sigue abierto.
func (s *Shift) IsOpen() bool { return s.Status == ShiftStatusOpen }

// PettyCashLog movimiento de caja chica o retiro, inmutable.
type PettyCashLog struct {
	ID            string
	ShiftID       string
	Amount        decimal.Decimal
	Category      string
	Description   string
	CreatedByID   string
	CreatedByName string
	CreatedAt     time.Time
}

// IsCashDrop indica si la categoría es la reservada para retiros.
func (l *PettyCashLog) IsCashDrop() bool { return l.Category == CashDropCategory }
