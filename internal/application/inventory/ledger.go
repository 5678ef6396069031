package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	dominv "github.com/jhoicas/otopia-pos/internal/domain/inventory"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// StockChange un cambio de stock con signo. Todo movimiento (ajuste manual, venta, canje de membresía)
// pasa por ApplyInTx, que bloquea la fila, aplica el delta y escribe la bitácora.
type StockChange struct {
	InventoryID string
	Delta       decimal.Decimal // positivo entrada, negativo salida
	Reason      string
	ReferenceID string
	UserID      string
	UserName    string
	// UnitCost en entradas recalcula el costo promedio ponderado.
	UnitCost *decimal.Decimal
	// RejectErr error si el stock quedaría negativo; por defecto domain.ErrInsufficientStock.
	RejectErr error
}

// ApplyInTx aplica el cambio usando los repositorios de la transacción del caller.
// Si retorna error (ej: ErrInsufficientStock), el caller debe hacer rollback.
func ApplyInTx(ctx context.Context, repos repository.TxRepos, ch StockChange, now time.Time) (*entity.InventoryLog, error) {
	// Bloquea la fila (SELECT FOR UPDATE) para evitar condiciones de carrera
	item, err := repos.Inventory.GetForUpdate(ctx, ch.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem de inventario %s", domain.ErrNotFound, ch.InventoryID)
	}

	rejectErr := ch.RejectErr
	if rejectErr == nil {
		rejectErr = fmt.Errorf("%w: %s (disponible %s, requerido %s)",
			domain.ErrInsufficientStock, item.Name, item.CurrentStock.String(), ch.Delta.Neg().String())
	}
	newStock, err := dominv.ApplyDelta(item.CurrentStock, ch.Delta, rejectErr)
	if err != nil {
		return nil, err
	}

	unitCost := item.UnitCost
	var lastPurchase *time.Time
	if ch.Delta.IsPositive() && ch.UnitCost != nil {
		unitCost = dominv.WeightedAverageCost(item.CurrentStock, item.UnitCost, ch.Delta, *ch.UnitCost)
		lastPurchase = &now
	}
	if err := repos.Inventory.SetStock(ctx, item.ID, newStock, unitCost, lastPurchase); err != nil {
		return nil, err
	}

	entry := &entity.InventoryLog{
		ID:            uuid.New().String(),
		InventoryID:   item.ID,
		InventoryName: item.Name,
		ChangeAmount:  ch.Delta,
		PreviousStock: item.CurrentStock,
		NewStock:      newStock,
		Reason:        ch.Reason,
		ReferenceID:   ch.ReferenceID,
		UserID:        ch.UserID,
		UserName:      ch.UserName,
		CreatedAt:     now,
	}
	if err := repos.InventoryLogs.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeductBOM descuenta los insumos de un servicio: cada línea × la cantidad vendida.
func DeductBOM(ctx context.Context, repos repository.TxRepos, svc *entity.Service, qty decimal.Decimal, base StockChange, now time.Time) error {
	for _, line := range svc.BOM {
		ch := base
		ch.InventoryID = line.InventoryID
		ch.Delta = line.Quantity.Mul(qty).Neg()
		if _, err := ApplyInTx(ctx, repos, ch, now); err != nil {
			return err
		}
	}
	return nil
}
