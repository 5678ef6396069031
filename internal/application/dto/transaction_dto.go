package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest línea de venta: service_id o product_id, nunca ambos.
type LineItemRequest struct {
	ServiceID      string          `json:"service_id" validate:"required_without=ProductID,excluded_with=ProductID"`
	ProductID      string          `json:"product_id" validate:"required_without=ServiceID"`
	Name           string          `json:"name" validate:"required,max=150"`
	Quantity       decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price          decimal.Decimal `json:"price" validate:"gte=0"`
	TechnicianID   string          `json:"technician_id"`
	TechnicianName string          `json:"technician_name"`
}

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	CustomerID      string            `json:"customer_id"`
	Items           []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string            `json:"payment_method" validate:"required,oneof=cash card qr subscription"`
	PaymentReceived decimal.Decimal   `json:"payment_received" validate:"gte=0"`
	Notes           string            `json:"notes" validate:"omitempty,max=500"`
}

// LineItemResponse línea con subtotal y comisión calculados.
type LineItemResponse struct {
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

// TransactionResponse venta en respuestas.
type TransactionResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoice_number"`
	KasirID         string             `json:"kasir_id"`
	KasirName       string             `json:"kasir_name"`
	CustomerID      string             `json:"customer_id,omitempty"`
	CustomerName    string             `json:"customer_name,omitempty"`
	ShiftID         string             `json:"shift_id"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   string             `json:"payment_method"`
	PaymentReceived decimal.Decimal    `json:"payment_received"`
	ChangeAmount    decimal.Decimal    `json:"change_amount"`
	TotalCommission decimal.Decimal    `json:"total_commission"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// TransactionListQuery filtros de GET /api/transactions.
type TransactionListQuery struct {
	From    string `query:"from"` // RFC3339 o YYYY-MM-DD
	To      string `query:"to"`
	ShiftID string `query:"shift_id"`
	Limit   int    `query:"limit"`
}
