// Package report exporta reportes de turno y de ventas a .xlsx con excelize.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

var _ ports.ReportExporter = (*XLSXExporter)(nil)

const timeLayout = "2006-01-02 15:04"

// XLSXExporter implementa ports.ReportExporter.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// ShiftReport hojas: Resumen, Transaksi y Kas Kecil.
func (e *XLSXExporter) ShiftReport(r ports.ShiftReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	s := r.Shift
	rec := r.Reconciliation
	summary := [][]any{
		{"Kasir", s.KasirName},
		{"Status", s.Status},
		{"Dibuka", s.OpenedAt.UTC().Format(timeLayout)},
		{"Ditutup", formatTimePtr(s.ClosedAt)},
		{"Saldo awal", money(rec.OpeningBalance)},
		{"Penjualan tunai", money(rec.TotalCashSales)},
		{"Kas kecil", money(rec.PettyCashTotal)},
		{"Setoran (cash drop)", money(rec.CashDropTotal)},
		{"Saldo seharusnya", money(rec.ExpectedBalance)},
		{"Saldo akhir", moneyPtr(s.ClosingBalance)},
		{"Selisih", moneyPtr(s.Variance)},
		{"Jumlah transaksi", rec.TransactionCount},
	}
	for _, m := range entity.PaymentMethods {
		summary = append(summary, []any{"Total " + string(m), money(rec.ByPaymentMethod[m])})
	}
	if err := writeSheet(f, "Ringkasan", []string{"Keterangan", "Nilai"}, summary); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	if err := writeSheet(f, "Transaksi", transactionHeader, transactionRows(r.Transactions)); err != nil {
		return nil, err
	}

	petty := make([][]any, 0, len(r.PettyCash))
	for _, l := range r.PettyCash {
		petty = append(petty, []any{
			l.CreatedAt.UTC().Format(timeLayout), l.Category, l.Description, money(l.Amount), l.CreatedByName,
		})
	}
	if err := writeSheet(f, "Kas Kecil", []string{"Waktu", "Kategori", "Keterangan", "Jumlah", "Oleh"}, petty); err != nil {
		return nil, err
	}
	return toBytes(f)
}

// TransactionsReport una fila por venta en [from, to).
func (e *XLSXExporter) TransactionsReport(txns []*entity.Transaction, from, to time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s_%s", from.UTC().Format("20060102"), to.UTC().Format("20060102"))
	if err := writeSheet(f, sheet, transactionHeader, transactionRows(txns)); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	return toBytes(f)
}

var transactionHeader = []string{
	"Invoice", "Waktu", "Kasir", "Pelanggan", "Item", "Subtotal", "Total", "Metode", "Dibayar", "Kembali", "Komisi",
}

func transactionRows(txns []*entity.Transaction) [][]any {
	rows := make([][]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, []any{
			t.InvoiceNumber,
			t.CreatedAt.UTC().Format(timeLayout),
			t.KasirName,
			t.CustomerName,
			len(t.Items),
			money(t.Subtotal),
			money(t.Total),
			string(t.PaymentMethod),
			money(t.PaymentReceived),
			money(t.ChangeAmount),
			money(t.TotalCommission),
		})
	}
	return rows
}

// writeSheet crea la hoja con cabecera en negrita y la activa.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, values := range rows {
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	last, _ := excelize.ColumnNumberToName(len(header))
	_ = f.SetColWidth(sheet, "A", last, 18)
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", last+"1", style)
	return nil
}

func toBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

func moneyPtr(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return money(*d)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timeLayout)
}
