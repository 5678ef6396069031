package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/usecase"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/infrastructure/memory"
)

func n(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func catalogSetup(t *testing.T) (*usecase.CatalogUseCase, repository.Store) {
	t.Helper()
	store := memory.New().Repositories()
	require.NoError(t, store.Inventory.Create(context.Background(), &entity.InventoryItem{
		ID: "inv-1", SKU: "SHP", Name: "Shampoo", Unit: "liter", CurrentStock: n("7.5"), IsActive: true,
	}))
	return usecase.NewCatalogUseCase(store), store
}

func TestCreateService_CompletaElBOMDesdeInventario(t *testing.T) {
	uc, _ := catalogSetup(t)
	ctx := context.Background()

	svc, err := uc.CreateService(ctx, dto.ServiceRequest{
		Name: "Cuci Mobil", Price: n("50000"), CommissionRate: n("10"),
		BOM: []dto.BOMLineDTO{{InventoryID: "inv-1", Quantity: n("0.5")}},
	})
	require.NoError(t, err)
	assert.True(t, svc.IsActive)
	require.Len(t, svc.BOM, 1)
	assert.Equal(t, "Shampoo", svc.BOM[0].InventoryName)
	assert.Equal(t, "liter", svc.BOM[0].Unit)

	_, err = uc.CreateService(ctx, dto.ServiceRequest{
		Name: "Poles", BOM: []dto.BOMLineDTO{{InventoryID: "nope", Quantity: n("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteService_SoloLoDesactiva(t *testing.T) {
	uc, store := catalogSetup(t)
	ctx := context.Background()

	svc, err := uc.CreateService(ctx, dto.ServiceRequest{Name: "Vakum", Price: n("20000")})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteService(ctx, svc.ID))

	list, err := uc.ListServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	stored, err := store.Services.GetByID(ctx, svc.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)

	assert.ErrorIs(t, uc.DeleteService(ctx, "otro"), domain.ErrNotFound)
}

func TestProducts_StockDelInventarioLigado(t *testing.T) {
	uc, _ := catalogSetup(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, dto.ProductRequest{Name: "Shampoo 1L", Price: n("35000"), InventoryID: "inv-1"})
	require.NoError(t, err)
	require.NotNil(t, p.Stock)
	assert.True(t, p.Stock.Equal(n("7.5")))

	_, err = uc.CreateProduct(ctx, dto.ProductRequest{Name: "Parfum", Price: n("15000")})
	require.NoError(t, err)

	_, err = uc.CreateProduct(ctx, dto.ProductRequest{Name: "X", InventoryID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, item := range list {
		if item.InventoryID == "inv-1" {
			require.NotNil(t, item.Stock)
			assert.Equal(t, "liter", item.Unit)
		} else {
			assert.Nil(t, item.Stock)
		}
	}
}
