package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesSince suma de total y número de ventas desde since.
func (r *AnalyticsRepo) SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, int, error) {
	var (
		revenue decimal.Decimal
		count   int
	)
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM transactions
		WHERE created_at >= $1`, since).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales since: %w", err)
	}
	return revenue, count, nil
}

func (r *AnalyticsRepo) MembershipCounts(ctx context.Context, now, until time.Time) (int, int, error) {
	var active, expiring int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE end_date >= $1),
		       COUNT(*) FILTER (WHERE end_date >= $1 AND end_date < $2)
		FROM memberships`, now, until).Scan(&active, &expiring)
	if err != nil {
		return 0, 0, fmt.Errorf("membership counts: %w", err)
	}
	return active, expiring, nil
}

func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM inventory_items
		WHERE is_active AND current_stock <= min_stock`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// KasirPerformanceSince agrupa por kasir; el nombre es el último registrado en sus ventas.
func (r *AnalyticsRepo) KasirPerformanceSince(ctx context.Context, since time.Time) ([]repository.KasirPerformance, error) {
	const query = `
	SELECT kasir_id,
	       (array_agg(kasir_name ORDER BY created_at DESC))[1] AS kasir_name,
	       COUNT(*)                                            AS transaction_count,
	       COALESCE(SUM(total), 0)                             AS revenue
	FROM transactions
	WHERE created_at >= $1
	GROUP BY kasir_id
	ORDER BY revenue DESC`

	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("kasir performance: %w", err)
	}
	defer rows.Close()

	var results []repository.KasirPerformance
	for rows.Next() {
		var kp repository.KasirPerformance
		if err := rows.Scan(&kp.KasirID, &kp.KasirName, &kp.TransactionCount, &kp.Revenue); err != nil {
			return nil, fmt.Errorf("scan kasir performance: %w", err)
		}
		results = append(results, kp)
	}
	return results, rows.Err()
}
