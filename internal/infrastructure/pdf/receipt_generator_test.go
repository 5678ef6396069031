package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

func TestGenerate_ProducePDF(t *testing.T) {
	txn := &entity.Transaction{
		InvoiceNumber: "INV-20260310-0001",
		KasirName:     "Budi",
		CustomerName:  "Andi",
		Items: []entity.LineItem{
			{ServiceID: "svc-1", Name: "Cuci Mobil", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(50000), Subtotal: decimal.NewFromInt(50000), TechnicianName: "Eko"},
			{ProductID: "p-1", Name: "Pewangi", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(15000), Subtotal: decimal.NewFromInt(30000)},
		},
		Subtotal:        decimal.NewFromInt(80000),
		Total:           decimal.NewFromInt(72000),
		PaymentMethod:   entity.PaymentCash,
		PaymentReceived: decimal.NewFromInt(100000),
		ChangeAmount:    decimal.NewFromInt(28000),
		CreatedAt:       time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}

	out, err := NewReceiptGenerator().Generate(txn, "OTOPIA CAR WASH")
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}
