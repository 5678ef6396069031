package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio de pago de una venta.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentQR           PaymentMethod = "qr"
	PaymentSubscription PaymentMethod = "subscription" // venta cubierta por un canje de membresía
)

// Valid indica si el medio de pago es conocido.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentQR, PaymentSubscription:
		return true
	}
	return false
}

// PaymentMethods orden estable para reportes.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentQR, PaymentSubscription}

// LineItem línea de la venta: referencia un servicio o un producto, nunca ambos.
type LineItem struct {
	ServiceID        string          `json:"service_id,omitempty"`
	ProductID        string          `json:"product_id,omitempty"`
	Name             string          `json:"name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	TechnicianID     string          `json:"technician_id,omitempty"`
	TechnicianName   string          `json:"technician_name,omitempty"`
}

// IsService indica si la línea es un servicio.
func (l LineItem) IsService() bool { return l.ServiceID != "" }

// Transaction venta registrada. Inmutable una vez creada.
type Transaction struct {
	ID              string
	InvoiceNumber   string
	IdempotencyKey  string
	KasirID         string
	KasirName       string
	CustomerID      string
	CustomerName    string
	ShiftID         string
	Items           []LineItem
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   PaymentMethod
	PaymentReceived decimal.Decimal
	ChangeAmount    decimal.Decimal
	TotalCommission decimal.Decimal
	Notes           string
	CreatedAt       time.Time
}
