package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// KasirPerformance resultado crudo de ventas por kasir.
type KasirPerformance struct {
	KasirID          string
	KasirName        string
	TransactionCount int
	Revenue          decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// SalesSince ingresos y cantidad de transacciones desde since.
	// Usa COALESCE para devolver cero si no hay ventas.
	SalesSince(ctx context.Context, since time.Time) (revenue decimal.Decimal, count int, err error)

	// MembershipCounts membresías vigentes (end >= now) y por vencer (now <= end < until).
	MembershipCounts(ctx context.Context, now, until time.Time) (active, expiring int, err error)

	// CountLowStock ítems activos con current_stock <= min_stock.
	CountLowStock(ctx context.Context) (int, error)

	// KasirPerformanceSince ordenado por ingresos descendente.
	KasirPerformanceSince(ctx context.Context, since time.Time) ([]KasirPerformance, error)
}
