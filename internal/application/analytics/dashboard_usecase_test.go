package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

type mapCache struct {
	data map[string][]byte
	sets int
}

func (c *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *mapCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func seed(t *testing.T, store repository.Store, now time.Time) {
	t.Helper()
	ctx := context.Background()
	txns := []entity.Transaction{
		{ID: "t1", InvoiceNumber: "INV-1", KasirID: "k-1", KasirName: "Budi", Total: n("50000"), PaymentMethod: entity.PaymentCash, CreatedAt: now.Add(-time.Hour)},
		{ID: "t2", InvoiceNumber: "INV-2", KasirID: "k-1", KasirName: "Budi", Total: n("70000"), PaymentMethod: entity.PaymentQR, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "t3", InvoiceNumber: "INV-3", KasirID: "k-2", KasirName: "Sari", Total: n("30000"), PaymentMethod: entity.PaymentCash, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "t4", InvoiceNumber: "INV-4", KasirID: "k-2", KasirName: "Sari", Total: n("99000"), PaymentMethod: entity.PaymentCash, CreatedAt: now.AddDate(0, 0, -1)},
	}
	for i := range txns {
		require.NoError(t, store.Transactions.Create(ctx, &txns[i]))
	}
	memberships := []entity.Membership{
		{ID: "m1", CustomerID: "c1", MembershipType: entity.MembershipMonthly, StartDate: now.AddDate(0, 0, -28), EndDate: now.AddDate(0, 0, 2)},
		{ID: "m2", CustomerID: "c2", MembershipType: entity.MembershipAnnual, StartDate: now, EndDate: now.AddDate(1, 0, 0)},
		{ID: "m3", CustomerID: "c3", MembershipType: entity.MembershipMonthly, StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, -1, 0)},
	}
	for i := range memberships {
		require.NoError(t, store.Memberships.Create(ctx, &memberships[i]))
	}
	require.NoError(t, store.Inventory.Create(ctx, &entity.InventoryItem{ID: "i1", SKU: "A", CurrentStock: n("1"), MinStock: n("5"), IsActive: true}))
	require.NoError(t, store.Inventory.Create(ctx, &entity.InventoryItem{ID: "i2", SKU: "B", CurrentStock: n("9"), MinStock: n("5"), IsActive: true}))
}

func TestStats_CifrasDelDia(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	store := memory.New().Repositories()
	seed(t, store, now)

	uc := NewDashboardUseCase(store.Analytics, nil, time.UTC, zerolog.Nop())
	uc.now = func() time.Time { return now }

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.TodayRevenue.Equal(n("150000")))
	assert.Equal(t, 3, stats.TodayTransactions)
	assert.Equal(t, 2, stats.ActiveMemberships)
	assert.Equal(t, 1, stats.ExpiringMemberships)
	assert.Equal(t, 1, stats.LowStockItems)
	require.Len(t, stats.KasirPerformance, 2)
	assert.Equal(t, "Budi", stats.KasirPerformance[0].KasirName)
	assert.Equal(t, 2, stats.KasirPerformance[0].TransactionCount)
	assert.True(t, stats.KasirPerformance[0].Revenue.Equal(n("120000")))
}

func TestStats_PorVencerCuentaDiasCompletos(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	store := memory.New().Repositories()
	ctx := context.Background()
	require.NoError(t, store.Memberships.Create(ctx, &entity.Membership{
		ID: "m-7d12h", CustomerID: "c1", MembershipType: entity.MembershipMonthly, EndDate: now.Add(7*24*time.Hour + 12*time.Hour),
	}))
	require.NoError(t, store.Memberships.Create(ctx, &entity.Membership{
		ID: "m-8d", CustomerID: "c2", MembershipType: entity.MembershipMonthly, EndDate: now.Add(8 * 24 * time.Hour),
	}))

	uc := NewDashboardUseCase(store.Analytics, nil, time.UTC, zerolog.Nop())
	uc.now = func() time.Time { return now }

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveMemberships)
	assert.Equal(t, 1, stats.ExpiringMemberships)
}

func TestStats_UsaCache(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)
	store := memory.New().Repositories()
	seed(t, store, now)
	cache := &mapCache{data: map[string][]byte{}}

	uc := NewDashboardUseCase(store.Analytics, cache, time.UTC, zerolog.Nop())
	uc.now = func() time.Time { return now }

	first, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// Una venta nueva no aparece mientras la entrada siga en caché.
	require.NoError(t, store.Transactions.Create(context.Background(), &entity.Transaction{
		ID: "t5", InvoiceNumber: "INV-5", KasirID: "k-1", Total: n("10000"), PaymentMethod: entity.PaymentCash, CreatedAt: now,
	}))
	second, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.TodayTransactions, second.TodayTransactions)
	assert.True(t, first.TodayRevenue.Equal(second.TodayRevenue))
	assert.Equal(t, 1, cache.sets)
}
