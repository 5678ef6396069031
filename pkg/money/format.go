// Package money formatea importes en Rupiah para recibos y mensajes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah devuelve el importe redondeado a unidades con separador de miles indonesio: "Rp 150.000".
func Rupiah(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-Rp %d", -n)
	}
	return printer.Sprintf("Rp %d", n)
}

// Quantity formatea cantidades de inventario con hasta 2 decimales ("0,5", "12").
func Quantity(q decimal.Decimal) string {
	if q.Equal(q.Truncate(0)) {
		return printer.Sprintf("%d", q.IntPart())
	}
	f, _ := q.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
