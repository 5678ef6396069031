package promotion_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/promotion"
)

func n(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func activePromo(typ entity.PromotionType, value int64) *entity.Promotion {
	now := time.Now().UTC()
	return &entity.Promotion{
		Code:          "HEMAT",
		PromotionType: typ,
		Value:         n(value),
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		IsActive:      true,
	}
}

func TestValidate_CompraMinimaEsInclusiva(t *testing.T) {
	p := activePromo(entity.PromotionFixedAmount, 10000)
	p.MinPurchase = n(100000)

	_, err := promotion.Validate(p, n(99999), time.Now())
	assert.ErrorIs(t, err, domain.ErrBelowMinPurchase)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	discount, err := promotion.Validate(p, n(100000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(n(10000)))
}

func TestValidate_PorcentajeConTope(t *testing.T) {
	p := activePromo(entity.PromotionPercentage, 15)
	maxDiscount := n(20000)
	p.MaxDiscount = &maxDiscount

	discount, err := promotion.Validate(p, n(200000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(n(20000)), "15%% de 200000 es 30000, el tope lo deja en 20000; obtenido %s", discount)
}

func TestValidate_PorcentajeSinTope(t *testing.T) {
	p := activePromo(entity.PromotionPercentage, 10)

	discount, err := promotion.Validate(p, n(85000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(n(8500)))
}

func TestValidate_MontoFijoNuncaSuperaElSubtotal(t *testing.T) {
	p := activePromo(entity.PromotionFixedAmount, 50000)

	discount, err := promotion.Validate(p, n(30000), time.Now())
	require.NoError(t, err)
	assert.True(t, discount.Equal(n(30000)))
}

func TestValidate_VentanaDeVigencia(t *testing.T) {
	p := activePromo(entity.PromotionFixedAmount, 1000)

	_, err := promotion.Validate(p, n(5000), p.StartDate.Add(-time.Minute))
	assert.ErrorIs(t, err, domain.ErrPromotionNotStarted)

	_, err = promotion.Validate(p, n(5000), p.EndDate.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrPromotionExpired)
	assert.ErrorIs(t, err, domain.ErrFailedPrecondition)
}

func TestValidate_LimiteDeUsoAlcanzado(t *testing.T) {
	p := activePromo(entity.PromotionFixedAmount, 1000)
	limit := 3
	p.UsageLimit = &limit
	p.UsageCount = 3

	_, err := promotion.Validate(p, n(5000), time.Now())
	assert.ErrorIs(t, err, domain.ErrPromotionExhausted)
}

func TestValidate_InactivaEsNotFound(t *testing.T) {
	p := activePromo(entity.PromotionFixedAmount, 1000)
	p.IsActive = false

	_, err := promotion.Validate(p, n(5000), time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
