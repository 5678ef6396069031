package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	domshift "github.com/jhoicas/otopia-pos/internal/domain/shift"
)

// Messenger puerto de salida hacia el canal de mensajería (WhatsApp).
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type Messenger interface {
	Send(ctx context.Context, phone, text string) error
	Health(ctx context.Context) error
}

// Notification mensaje pendiente de entrega asíncrona.
type Notification struct {
	Kind      string `json:"kind"` // receipt, reminder
	Phone     string `json:"phone"`
	Text      string `json:"text"`
	Reference string `json:"reference,omitempty"`
}

// NotificationQueue cola de entrega best-effort: un fallo al encolar nunca afecta la operación que lo originó.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n Notification) error
}

// IdempotencyStore guarda de llaves en curso.
type IdempotencyStore interface {
	// Acquire devuelve false si otra solicitud con la misma llave sigue en proceso.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Cache caché de lecturas costosas (dashboard).
type Cache interface {
	// Get devuelve false si la llave no existe o expiró.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// ReceiptPDFGenerator genera el recibo imprimible de una venta.
type ReceiptPDFGenerator interface {
	Generate(txn *entity.Transaction, businessName string) ([]byte, error)
}

// ShiftReport datos del reporte de cierre de turno.
type ShiftReport struct {
	Shift          *entity.Shift
	Reconciliation domshift.Reconciliation
	Transactions   []*entity.Transaction
	PettyCash      []*entity.PettyCashLog
}

// ReportExporter genera hojas de cálculo (.xlsx).
type ReportExporter interface {
	ShiftReport(report ShiftReport) ([]byte, error)
	TransactionsReport(txns []*entity.Transaction, from, to time.Time) ([]byte, error)
}

// Metrics instrumentación de negocio; las implementaciones nunca fallan.
type Metrics interface {
	TransactionRecorded(method entity.PaymentMethod, total decimal.Decimal)
	NotificationDelivered(kind string, err error)
	ShiftClosed(kasirName string, variance decimal.Decimal)
}

// NopMetrics implementación vacía para pruebas y arranques sin Prometheus.
type NopMetrics struct{}

func (NopMetrics) TransactionRecorded(entity.PaymentMethod, decimal.Decimal) {}
func (NopMetrics) NotificationDelivered(string, error)                      {}
func (NopMetrics) ShiftClosed(string, decimal.Decimal)                      {}
