package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/otopia-pos/pkg/money"
)

func TestRupiah_SeparadorDeMilesIndonesio(t *testing.T) {
	assert.Equal(t, "Rp 150.000", money.Rupiah(decimal.NewFromInt(150000)))
	assert.Equal(t, "Rp 0", money.Rupiah(decimal.Zero))
	assert.Equal(t, "-Rp 2.500", money.Rupiah(decimal.NewFromInt(-2500)))
}

func TestQuantity_EnterosSinDecimales(t *testing.T) {
	assert.Equal(t, "12", money.Quantity(decimal.NewFromInt(12)))
}
