package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func TestTxRunner_RollbackDescartaTodosLosCambios(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	require.NoError(t, store.Customers.Create(ctx, &entity.Customer{ID: "c1", Name: "Budi"}))

	boom := errors.New("boom")
	err := store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		require.NoError(t, repos.Customers.IncrementStats(ctx, "c1", decimal.NewFromInt(50000)))
		require.NoError(t, repos.Customers.Create(ctx, &entity.Customer{ID: "c2", Name: "Sari"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	c1, _ := store.Customers.GetByID(ctx, "c1")
	assert.Equal(t, 0, c1.TotalVisits)
	c2, _ := store.Customers.GetByID(ctx, "c2")
	assert.Nil(t, c2)
}

func TestTxRunner_CommitPublicaLosCambios(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	require.NoError(t, store.Customers.Create(ctx, &entity.Customer{ID: "c1", Name: "Budi"}))

	err := store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		return repos.Customers.IncrementStats(ctx, "c1", decimal.NewFromInt(50000))
	})
	require.NoError(t, err)

	c1, _ := store.Customers.GetByID(ctx, "c1")
	assert.Equal(t, 1, c1.TotalVisits)
	assert.True(t, c1.TotalSpending.Equal(decimal.NewFromInt(50000)))
}

func TestInvoiceCounter_ConcurrenteSinDuplicados(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	const n = 50
	seqs := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := store.InvoiceCounters.Next(ctx, day)
			assert.NoError(t, err)
			seqs <- seq
		}()
	}
	wg.Wait()
	close(seqs)

	seen := map[int64]bool{}
	for s := range seqs {
		assert.False(t, seen[s], "consecutivo repetido %d", s)
		seen[s] = true
	}
	assert.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "falta el consecutivo %d", i)
	}
}

func TestShiftRepository_UnSoloTurnoAbiertoPorKasir(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()

	require.NoError(t, store.Shifts.Create(ctx, &entity.Shift{ID: "s1", KasirID: "k1", Status: entity.ShiftStatusOpen}))
	err := store.Shifts.Create(ctx, &entity.Shift{ID: "s2", KasirID: "k1", Status: entity.ShiftStatusOpen})
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
}

func TestPromotionRepository_IncrementUsageRespetaElLimite(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	limit := 1
	require.NoError(t, store.Promotions.Create(ctx, &entity.Promotion{ID: "p1", Code: "X", IsActive: true, UsageLimit: &limit}))

	count, err := store.Promotions.IncrementUsage(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.Promotions.IncrementUsage(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrPromotionExhausted)
}
