package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageCost_MezclaDosLotes(t *testing.T) {
	// 10 L a 20.000 + 10 L a 30.000 = 25.000 por litro
	got := inventory.WeightedAverageCost(d("10"), d("20000"), d("10"), d("30000"))
	assert.True(t, got.Equal(d("25000")), "costo promedio esperado 25000, obtenido %s", got)
}

func TestWeightedAverageCost_SinStockDevuelveCero(t *testing.T) {
	got := inventory.WeightedAverageCost(decimal.Zero, decimal.Zero, decimal.Zero, d("5000"))
	assert.True(t, got.IsZero())
}

func TestApplyDelta_RestaHastaCero(t *testing.T) {
	next, err := inventory.ApplyDelta(d("1"), d("-1"), domain.ErrNegativeStock)
	require.NoError(t, err)
	assert.True(t, next.IsZero())
}

func TestApplyDelta_RechazaNegativoYConservaStock(t *testing.T) {
	next, err := inventory.ApplyDelta(d("0.4"), d("-0.5"), domain.ErrNegativeStock)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, next.Equal(d("0.4")), "el stock no debe cambiar si se rechaza")
}

func TestApplyDelta_ErrorPorDefectoEsStockInsuficiente(t *testing.T) {
	_, err := inventory.ApplyDelta(d("0"), d("-2"), nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.ErrorIs(t, err, domain.ErrFailedPrecondition)
}
