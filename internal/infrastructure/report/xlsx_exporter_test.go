package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	domshift "github.com/jhoicas/otopia-pos/internal/domain/shift"
)

func sampleTxns(shiftID string) []*entity.Transaction {
	return []*entity.Transaction{{
		ID: "t-1", InvoiceNumber: "INV-20260310-0001", KasirName: "Budi", ShiftID: shiftID,
		Items:         []entity.LineItem{{Name: "Cuci Mobil"}},
		Subtotal:      decimal.NewFromInt(50000),
		Total:         decimal.NewFromInt(50000),
		PaymentMethod: entity.PaymentCash, PaymentReceived: decimal.NewFromInt(50000),
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}}
}

func TestShiftReport_Hojas(t *testing.T) {
	s := &entity.Shift{ID: "s-1", KasirName: "Budi", Status: entity.ShiftStatusOpen, OpeningBalance: decimal.NewFromInt(100000), OpenedAt: time.Now()}
	txns := sampleTxns("s-1")
	out, err := NewXLSXExporter().ShiftReport(ports.ShiftReport{
		Shift:          s,
		Reconciliation: domshift.Reconcile(s, txns),
		Transactions:   txns,
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Ringkasan", "Transaksi", "Kas Kecil"}, f.GetSheetList())

	v, err := f.GetCellValue("Ringkasan", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Keterangan", v)
	v, err = f.GetCellValue("Transaksi", "A2")
	require.NoError(t, err)
	assert.Equal(t, "INV-20260310-0001", v)
}

func TestTransactionsReport_UnaFilaPorVenta(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	out, err := NewXLSXExporter().TransactionsReport(sampleTxns("s-1"), from, from.AddDate(0, 1, 0))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("20260301_20260401")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Budi", rows[1][2])
}
