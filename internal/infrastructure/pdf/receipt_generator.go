// Package pdf genera el recibo imprimible de una venta (ancho de impresora térmica de 80 mm).
//
// Layout:
//
//	┌──────────────────────────────┐
//	│  NEGOCIO                     │
//	│  N° invoice / fecha / kasir  │
//	│  ─────────────────────────── │
//	│  Ítem                Subtotal│
//	│   cant x precio              │
//	│  ─────────────────────────── │
//	│  TOTAL / Bayar / Kembali     │
//	│  QR (n° invoice) + gracias   │
//	└──────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/pkg/money"
)

var _ ports.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Papel térmico: 80 mm de ancho; maroto añade páginas si el recibo no cabe.
const (
	paperWidth  = 80
	paperHeight = 200
)

// ReceiptGenerator implementa ports.ReceiptPDFGenerator con Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(txn *entity.Transaction, businessName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(paperWidth, paperHeight).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("Receipt "+txn.InvoiceNumber, true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(txn, businessName)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(itemRows(txn.Items)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRows(txn)...)
	m.AddRows(footerRows(txn)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(txn *entity.Transaction, businessName string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(businessName, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary,
		}))),
		row.New(4).Add(col.New(12).Add(text.New(txn.InvoiceNumber, props.Text{
			Style: fontstyle.Bold, Align: align.Center,
		}))),
		row.New(4).Add(col.New(12).Add(text.New(txn.CreatedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
			Align: align.Center, Color: colorGray,
		}))),
		row.New(4).Add(col.New(12).Add(text.New("Kasir: "+txn.KasirName, props.Text{Color: colorGray}))),
	}
	if txn.CustomerName != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New("Pelanggan: "+txn.CustomerName, props.Text{Color: colorGray}))))
	}
	return rows
}

// itemRows: nombre y subtotal en una fila, cantidad x precio debajo.
func itemRows(items []entity.LineItem) []core.Row {
	rows := make([]core.Row, 0, len(items)*2)
	for _, it := range items {
		rows = append(rows,
			row.New(4).Add(
				col.New(8).Add(text.New(it.Name, props.Text{Style: fontstyle.Bold})),
				col.New(4).Add(text.New(money.Rupiah(it.Subtotal), props.Text{Align: align.Right})),
			),
			row.New(4).Add(col.New(12).Add(text.New(
				fmt.Sprintf("%s x %s", money.Quantity(it.Quantity), money.Rupiah(it.Price)),
				props.Text{Left: 2, Color: colorGray},
			))),
		)
		if it.TechnicianName != "" {
			rows = append(rows, row.New(4).Add(col.New(12).Add(text.New(
				"Teknisi: "+it.TechnicianName, props.Text{Left: 2, Color: colorGray},
			))))
		}
	}
	return rows
}

func totalRows(txn *entity.Transaction) []core.Row {
	pair := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(5).Add(
			col.New(6).Add(text.New(label, props.Text{Style: style})),
			col.New(6).Add(text.New(value, props.Text{Style: style, Align: align.Right})),
		)
	}
	rows := []core.Row{pair("Subtotal", money.Rupiah(txn.Subtotal), false)}
	if discount := txn.Subtotal.Sub(txn.Total); discount.IsPositive() {
		rows = append(rows, pair("Diskon", "-"+money.Rupiah(discount), false))
	}
	return append(rows,
		pair("TOTAL", money.Rupiah(txn.Total), true),
		pair("Bayar ("+string(txn.PaymentMethod)+")", money.Rupiah(txn.PaymentReceived), false),
		pair("Kembali", money.Rupiah(txn.ChangeAmount), false),
	)
}

func footerRows(txn *entity.Transaction) []core.Row {
	return []core.Row{
		row.New(3),
		row.New(22).Add(
			col.New(3),
			col.New(6).Add(code.NewQr(txn.InvoiceNumber, props.Rect{Percent: 95, Center: true})),
			col.New(3),
		),
		row.New(6).Add(col.New(12).Add(text.New("Terima kasih atas kunjungan Anda!", props.Text{
			Style: fontstyle.Italic, Align: align.Center, Top: 2,
		}))),
	}
}
