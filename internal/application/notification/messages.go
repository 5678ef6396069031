package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/pkg/money"
)

// Tipos de notificación encolada.
const (
	KindReceipt  = "receipt"
	KindReminder = "reminder"
	KindTest     = "test"
)

// ReceiptMessage texto del recibo enviado por WhatsApp.
func ReceiptMessage(businessName string, t *entity.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", businessName)
	fmt.Fprintf(&b, "No. Invoice: %s\n", t.InvoiceNumber)
	fmt.Fprintf(&b, "Tanggal: %s\n", t.CreatedAt.UTC().Format("02/01/2006 15:04"))
	if t.CustomerName != "" {
		fmt.Fprintf(&b, "Pelanggan: %s\n", t.CustomerName)
	}
	b.WriteString("------------------------\n")
	for _, it := range t.Items {
		fmt.Fprintf(&b, "%s x%s\n  %s\n", it.Name, money.Quantity(it.Quantity), money.Rupiah(it.Subtotal))
	}
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Total: *%s*\n", money.Rupiah(t.Total))
	fmt.Fprintf(&b, "Bayar (%s): %s\n", t.PaymentMethod, money.Rupiah(t.PaymentReceived))
	fmt.Fprintf(&b, "Kembali: %s\n\n", money.Rupiah(t.ChangeAmount))
	b.WriteString("Terima kasih atas kunjungan Anda!")
	return b.String()
}

// ReminderMessage aviso de vencimiento de membresía.
func ReminderMessage(businessName, customerName string, m *entity.Membership, daysLeft int) string {
	return fmt.Sprintf(
		"Halo %s,\n\nMembership *%s* Anda di %s akan berakhir pada %s (%d hari lagi).\n"+
			"Perpanjang sekarang agar tetap menikmati cuci sepuasnya.\n\nTerima kasih!",
		customerName, strings.ToUpper(string(m.MembershipType)), businessName,
		m.EndDate.UTC().Format(time.DateOnly), daysLeft,
	)
}
