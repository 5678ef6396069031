package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var (
	_ repository.InventoryRepository    = (*InventoryRepo)(nil)
	_ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)
)

const inventoryColumns = `id, sku, name, category, unit, current_stock, min_stock, max_stock, unit_cost,
	supplier, last_purchase_date, is_active, created_at, updated_at`

// InventoryRepo ítems de inventario sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func scanInventory(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := row.Scan(&it.ID, &it.SKU, &it.Name, &it.Category, &it.Unit, &it.CurrentStock, &it.MinStock,
		&it.MaxStock, &it.UnitCost, &it.Supplier, &it.LastPurchaseDate, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_items (`+inventoryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		it.ID, it.SKU, it.Name, it.Category, it.Unit, it.CurrentStock, it.MinStock, it.MaxStock, it.UnitCost,
		it.Supplier, it.LastPurchaseDate, it.IsActive, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, it.SKU)
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, "get inventory item", `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1`, id)
}

func (r *InventoryRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, "get inventory by sku", `SELECT `+inventoryColumns+` FROM inventory_items WHERE sku = $1`, sku)
}

// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene efecto dentro de una tx.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, "lock inventory item", `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *InventoryRepo) getOne(ctx context.Context, op, sql string, arg any) (*entity.InventoryItem, error) {
	it, err := scanInventory(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return it, nil
}

func (r *InventoryRepo) List(ctx context.Context, onlyActive bool) ([]*entity.InventoryItem, error) {
	return r.list(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE (NOT $1 OR is_active) ORDER BY name`, onlyActive)
}

func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.list(ctx, `
		SELECT `+inventoryColumns+` FROM inventory_items
		WHERE is_active AND current_stock <= min_stock
		ORDER BY name`)
}

func (r *InventoryRepo) list(ctx context.Context, sql string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update datos maestros y costo unitario; current_stock solo cambia vía SetStock.
func (r *InventoryRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_items SET sku = $2, name = $3, category = $4, unit = $5, min_stock = $6, max_stock = $7,
			unit_cost = $8, supplier = $9, is_active = $10, updated_at = $11
		WHERE id = $1`,
		it.ID, it.SKU, it.Name, it.Category, it.Unit, it.MinStock, it.MaxStock, it.UnitCost, it.Supplier, it.IsActive, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, it.SKU)
		}
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStock escribe el stock calculado por el ledger. lastPurchase nil conserva la fecha previa.
func (r *InventoryRepo) SetStock(ctx context.Context, id string, stock, unitCost decimal.Decimal, lastPurchase *time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE inventory_items
		SET current_stock = $2, unit_cost = $3, last_purchase_date = COALESCE($4, last_purchase_date), updated_at = now()
		WHERE id = $1`, id, stock, unitCost, lastPurchase)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Bitácora ─────────────────────────────────────────────────────────────────

const inventoryLogColumns = `id, inventory_id, inventory_name, change_amount, previous_stock, new_stock,
	reason, reference_id, user_id, user_name, created_at`

// InventoryLogRepo bitácora append-only sobre PostgreSQL.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador.
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

func (r *InventoryLogRepo) Create(ctx context.Context, l *entity.InventoryLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_logs (`+inventoryLogColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		l.ID, l.InventoryID, l.InventoryName, l.ChangeAmount, l.PreviousStock, l.NewStock,
		l.Reason, l.ReferenceID, l.UserID, l.UserName, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

func (r *InventoryLogRepo) ListByItem(ctx context.Context, inventoryID string, limit int) ([]*entity.InventoryLog, error) {
	sql := `SELECT ` + inventoryLogColumns + ` FROM inventory_logs WHERE inventory_id = $1 ORDER BY created_at DESC, id`
	args := []any{inventoryID}
	if limit > 0 {
		sql += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.InventoryID, &l.InventoryName, &l.ChangeAmount, &l.PreviousStock, &l.NewStock,
			&l.Reason, &l.ReferenceID, &l.UserID, &l.UserName, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
