package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

var admin = &entity.User{ID: "u-owner", FullName: "Pak Owner", Role: entity.RoleOwner}

func newItem(t *testing.T, uc *inventory.UseCase, sku, stock string) string {
	t.Helper()
	item, err := uc.Create(context.Background(), admin, dto.InventoryItemRequest{
		SKU: sku, Name: "Shampoo " + sku, Unit: "liter",
		CurrentStock: n(stock), MinStock: n("2"), MaxStock: n("20"), UnitCost: n("20000"),
	})
	require.NoError(t, err)
	return item.ID
}

func TestAdjust_RestarMasDeLoDisponibleSeRechazaYNoCambiaElStock(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	uc := inventory.NewUseCase(store)
	id := newItem(t, uc, "SHP-1", "3")

	_, err := uc.Adjust(ctx, admin, id, dto.AdjustStockRequest{Amount: n("5"), Type: "subtract", Reason: "rusak"})
	require.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	item, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, item.CurrentStock.Equal(n("3")), "stock sin cambios, obtenido %s", item.CurrentStock)

	logs, err := uc.Logs(ctx, id, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1, "solo la entrada de stock inicial")
}

func TestAdjust_EntradaConCostoRecalculaPromedioYRegistraBitacora(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repositories()
	uc := inventory.NewUseCase(store)
	id := newItem(t, uc, "SHP-2", "10")
	cost := n("30000")

	entry, err := uc.Adjust(ctx, admin, id, dto.AdjustStockRequest{Amount: n("10"), Type: "add", Reason: "compra", UnitCost: &cost})
	require.NoError(t, err)
	assert.True(t, entry.PreviousStock.Equal(n("10")))
	assert.True(t, entry.NewStock.Equal(n("20")))
	assert.Equal(t, admin.ID, entry.UserID)

	item, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, item.UnitCost.Equal(n("25000")), "costo promedio %s", item.UnitCost)
	assert.NotNil(t, item.LastPurchaseDate)

	logs, err := uc.Logs(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "compra", logs[0].Reason, "más reciente primero")
}

func TestAdjust_TipoInvalido(t *testing.T) {
	ctx := context.Background()
	uc := inventory.NewUseCase(memory.New().Repositories())
	id := newItem(t, uc, "SHP-3", "1")

	_, err := uc.Adjust(ctx, admin, id, dto.AdjustStockRequest{Amount: n("1"), Type: "set", Reason: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_SKUDuplicadoEsConflicto(t *testing.T) {
	ctx := context.Background()
	uc := inventory.NewUseCase(memory.New().Repositories())
	newItem(t, uc, "SHP-4", "1")

	_, err := uc.Create(ctx, admin, dto.InventoryItemRequest{SKU: "SHP-4", Name: "otro", Unit: "pcs"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLowStock_OrdenaPorDeficit(t *testing.T) {
	ctx := context.Background()
	uc := inventory.NewUseCase(memory.New().Repositories())
	newItem(t, uc, "OK", "10")
	casiVacio := newItem(t, uc, "CASI", "0.5")
	enMinimo := newItem(t, uc, "MIN", "2")

	got, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, casiVacio, got[0].ID)
	assert.Equal(t, 1, got[0].Priority)
	assert.True(t, got[0].SuggestedOrderQty.Equal(n("19.5")))
	assert.Equal(t, enMinimo, got[1].ID)
}
