package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func promoRequest(code string, limit *int) dto.PromotionRequest {
	now := time.Now().UTC()
	return dto.PromotionRequest{
		Code:          code,
		Name:          "Diskon Lebaran",
		PromotionType: "percentage",
		Value:         n("10"),
		MinPurchase:   n("50000"),
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		UsageLimit:    limit,
	}
}

func TestPromotion_CodigoActivoDuplicado(t *testing.T) {
	uc := usecase.NewPromotionUseCase(memory.New().Repositories())
	ctx := context.Background()

	p, err := uc.Create(ctx, promoRequest("lebaran", nil))
	require.NoError(t, err)
	assert.Equal(t, "LEBARAN", p.Code)

	_, err = uc.Create(ctx, promoRequest("LEBARAN", nil))
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPromotion_ValidateNoConsumeYRedeemSi(t *testing.T) {
	uc := usecase.NewPromotionUseCase(memory.New().Repositories())
	ctx := context.Background()
	limit := 1
	_, err := uc.Create(ctx, promoRequest("HEMAT", &limit))
	require.NoError(t, err)

	req := dto.ValidatePromotionRequest{Code: "hemat", Subtotal: n("200000")}
	for i := 0; i < 3; i++ {
		got, err := uc.Validate(ctx, req)
		require.NoError(t, err)
		assert.True(t, got.DiscountAmount.Equal(n("20000")))
		assert.True(t, got.FinalAmount.Equal(n("180000")))
		assert.Equal(t, 0, got.Promotion.UsageCount)
	}

	redeemed, err := uc.Redeem(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.Promotion.UsageCount)

	_, err = uc.Redeem(ctx, req)
	assert.ErrorIs(t, err, domain.ErrPromotionExhausted)
}

func TestPromotion_ErroresDeValidacion(t *testing.T) {
	uc := usecase.NewPromotionUseCase(memory.New().Repositories())
	ctx := context.Background()

	_, err := uc.Validate(ctx, dto.ValidatePromotionRequest{Code: "NADA", Subtotal: n("100000")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, promoRequest("MIN", nil))
	require.NoError(t, err)
	_, err = uc.Validate(ctx, dto.ValidatePromotionRequest{Code: "MIN", Subtotal: n("10000")})
	assert.ErrorIs(t, err, domain.ErrBelowMinPurchase)

	future := promoRequest("NANTI", nil)
	future.StartDate = time.Now().Add(time.Hour)
	future.EndDate = time.Now().Add(48 * time.Hour)
	_, err = uc.Create(ctx, future)
	require.NoError(t, err)
	_, err = uc.Validate(ctx, dto.ValidatePromotionRequest{Code: "NANTI", Subtotal: n("100000")})
	assert.ErrorIs(t, err, domain.ErrPromotionNotStarted)

	bad := promoRequest("MAL", nil)
	bad.EndDate = bad.StartDate
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPromotion_RedeemConcurrenteRespetaElLimite(t *testing.T) {
	uc := usecase.NewPromotionUseCase(memory.New().Repositories())
	ctx := context.Background()
	limit := 5
	_, err := uc.Create(ctx, promoRequest("RAME", &limit))
	require.NoError(t, err)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Redeem(ctx, dto.ValidatePromotionRequest{Code: "RAME", Subtotal: n("100000")}); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 5, ok)
}
