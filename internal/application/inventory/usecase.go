package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// Direcciones de ajuste manual.
const (
	AdjustAdd      = "add"
	AdjustSubtract = "subtract"
)

// UseCase administra el inventario: datos maestros, ajustes transaccionales (SELECT FOR UPDATE
// con Commit/Rollback), bitácora y alertas de stock bajo.
type UseCase struct {
	store repository.Store
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.Store) *UseCase {
	return &UseCase{store: store}
}

// Create da de alta un ítem. El stock inicial, si lo hay, entra por el ledger para quedar en la bitácora.
func (uc *UseCase) Create(ctx context.Context, actor *entity.User, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	now := time.Now().UTC()
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		SKU:          strings.TrimSpace(in.SKU),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: decimal.Zero,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		UnitCost:     in.UnitCost,
		Supplier:     in.Supplier,
		IsActive:     in.IsActive == nil || *in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		if err := repos.Inventory.Create(ctx, item); err != nil {
			return err
		}
		if in.CurrentStock.IsPositive() {
			_, err := ApplyInTx(ctx, repos, StockChange{
				InventoryID: item.ID,
				Delta:       in.CurrentStock,
				Reason:      "stock inicial",
				UserID:      actor.ID,
				UserName:    actor.FullName,
			}, now)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	item.CurrentStock = in.CurrentStock
	out := dto.ToInventoryItemResponse(item)
	return &out, nil
}

// Get devuelve un ítem por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToInventoryItemResponse(item)
	return &out, nil
}

// List ítems activos.
func (uc *UseCase) List(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.store.Inventory.List(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToInventoryItemResponse(it))
	}
	return out, nil
}

// Update modifica datos maestros. current_stock se ignora: el stock solo cambia con Adjust.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.InventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.SKU = strings.TrimSpace(in.SKU)
	item.Name = in.Name
	item.Category = in.Category
	item.Unit = in.Unit
	item.MinStock = in.MinStock
	item.MaxStock = in.MaxStock
	item.UnitCost = in.UnitCost
	item.Supplier = in.Supplier
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	item.UpdatedAt = time.Now().UTC()
	if err := uc.store.Inventory.Update(ctx, item); err != nil {
		return nil, err
	}
	out := dto.ToInventoryItemResponse(item)
	return &out, nil
}

// Delete desactiva el ítem; la bitácora se conserva.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return err
	}
	item.IsActive = false
	item.UpdatedAt = time.Now().UTC()
	return uc.store.Inventory.Update(ctx, item)
}

// Adjust suma o resta stock manualmente. Rechaza (InvalidInput) si el resultado sería negativo
// y en ese caso el stock queda intacto.
func (uc *UseCase) Adjust(ctx context.Context, actor *entity.User, id string, in dto.AdjustStockRequest) (*dto.InventoryLogResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor que 0", domain.ErrInvalidInput)
	}
	delta := in.Amount
	switch in.Type {
	case AdjustAdd:
	case AdjustSubtract:
		delta = delta.Neg()
	default:
		return nil, fmt.Errorf("%w: type debe ser add o subtract", domain.ErrInvalidInput)
	}

	var entry *entity.InventoryLog
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		var err error
		entry, err = ApplyInTx(ctx, repos, StockChange{
			InventoryID: id,
			Delta:       delta,
			Reason:      in.Reason,
			UserID:      actor.ID,
			UserName:    actor.FullName,
			UnitCost:    in.UnitCost,
			RejectErr:   domain.ErrNegativeStock,
		}, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToInventoryLogResponse(entry)
	return &out, nil
}

// Logs bitácora del ítem, más recientes primero.
func (uc *UseCase) Logs(ctx context.Context, id string, limit int) ([]dto.InventoryLogResponse, error) {
	if _, err := uc.getItem(ctx, id); err != nil {
		return nil, err
	}
	logs, err := uc.store.InventoryLogs.ListByItem(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ToInventoryLogResponse(l))
	}
	return out, nil
}

func (uc *UseCase) getItem(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.store.Inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}
