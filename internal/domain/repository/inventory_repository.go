package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// InventoryRepository define el puerto para ítems de inventario.
// El stock solo cambia con SetStock, que se usa exclusivamente desde el ledger dentro de una transacción.
type InventoryRepository interface {
	// Create devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	List(ctx context.Context, onlyActive bool) ([]*entity.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error)
	// Update actualiza los datos maestros; nunca toca current_stock.
	Update(ctx context.Context, item *entity.InventoryItem) error
	SetStock(ctx context.Context, id string, stock, unitCost decimal.Decimal, lastPurchase *time.Time) error
}

// InventoryLogRepository bitácora append-only: no hay Update ni Delete.
type InventoryLogRepository interface {
	Create(ctx context.Context, log *entity.InventoryLog) error
	// ListByItem más recientes primero; limit <= 0 significa sin límite.
	ListByItem(ctx context.Context, inventoryID string, limit int) ([]*entity.InventoryLog, error)
}
