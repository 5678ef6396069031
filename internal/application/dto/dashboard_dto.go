package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TodayRevenue        decimal.Decimal       `json:"today_revenue"`
	TodayTransactions   int                   `json:"today_transactions"`
	ActiveMemberships   int                   `json:"active_memberships"`
	ExpiringMemberships int                   `json:"expiring_memberships"` // vencen en <= 7 días
	LowStockItems       int                   `json:"low_stock_items"`
	KasirPerformance    []KasirPerformanceDTO `json:"kasir_performance"`
}

// KasirPerformanceDTO ventas de hoy por kasir.
type KasirPerformanceDTO struct {
	KasirID          string          `json:"kasir_id"`
	KasirName        string          `json:"kasir_name"`
	TransactionCount int             `json:"transaction_count"`
	Revenue          decimal.Decimal `json:"revenue"`
}
