package sales_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/sales"
)

func n(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPrice_SubtotalComisionYVuelto(t *testing.T) {
	items := []entity.LineItem{
		{ServiceID: "svc-wash", Name: "Cuci Reguler", Quantity: n(2), Price: n(35000)},
		{ProductID: "prd-parfum", Name: "Parfum", Quantity: n(1), Price: n(25000)},
	}
	rates := map[string]decimal.Decimal{"svc-wash": n(10)}

	got, err := sales.Price(items, rates, n(100000))
	require.NoError(t, err)

	assert.True(t, got.Subtotal.Equal(n(95000)))
	assert.True(t, got.Total.Equal(got.Subtotal), "total = subtotal")
	assert.True(t, got.ChangeAmount.Equal(n(5000)))
	assert.True(t, got.Items[0].CommissionAmount.Equal(n(7000)), "10%% de 70000")
	assert.True(t, got.Items[1].CommissionAmount.IsZero(), "los productos no generan comisión")
	assert.True(t, got.TotalCommission.Equal(n(7000)))
}

func TestPrice_PagoInsuficiente(t *testing.T) {
	items := []entity.LineItem{{ServiceID: "svc", Quantity: n(1), Price: n(50000)}}

	_, err := sales.Price(items, nil, n(49999))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrice_ItemConAmbasReferenciasEsInvalido(t *testing.T) {
	items := []entity.LineItem{{ServiceID: "svc", ProductID: "prd", Quantity: n(1), Price: n(1000)}}

	_, err := sales.Price(items, nil, n(1000))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceNumber_Formato(t *testing.T) {
	day := time.Date(2026, 2, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "INV-20260205-0001", sales.InvoiceNumber(day, 1))
	assert.Equal(t, "INV-20260205-0420", sales.InvoiceNumber(day, 420))
	assert.Regexp(t, regexp.MustCompile(`^INV-\d{8}-\d{4,}$`), sales.InvoiceNumber(day, 12345))
}

func TestInvoiceDay_UsaElDiaUTC(t *testing.T) {
	wib := time.FixedZone("WIB", 7*3600)
	local := time.Date(2026, 2, 6, 3, 0, 0, 0, wib)
	assert.Equal(t, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), sales.InvoiceDay(local))
}
