package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// ── Services ─────────────────────────────────────────────────────────────────

// ServiceRepository implementación en memoria de repository.ServiceRepository.
type ServiceRepository struct{ base }

var _ repository.ServiceRepository = (*ServiceRepository)(nil)

func (r *ServiceRepository) Create(_ context.Context, s *entity.Service) error {
	return r.write(func(d *data) error {
		v := *s
		v.BOM = slices.Clone(s.BOM)
		d.services[s.ID] = v
		return nil
	})
}

func (r *ServiceRepository) GetByID(_ context.Context, id string) (*entity.Service, error) {
	var out *entity.Service
	r.read(func(d *data) {
		if s, ok := d.services[id]; ok {
			s.BOM = slices.Clone(s.BOM)
			out = &s
		}
	})
	return out, nil
}

func (r *ServiceRepository) List(_ context.Context, onlyActive bool) ([]*entity.Service, error) {
	var out []*entity.Service
	r.read(func(d *data) {
		for _, s := range d.services {
			if onlyActive && !s.IsActive {
				continue
			}
			s.BOM = slices.Clone(s.BOM)
			out = append(out, ptr(s))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ServiceRepository) Update(_ context.Context, s *entity.Service) error {
	return r.write(func(d *data) error {
		if _, ok := d.services[s.ID]; !ok {
			return domain.ErrNotFound
		}
		v := *s
		v.BOM = slices.Clone(s.BOM)
		d.services[s.ID] = v
		return nil
	})
}

// ── Products ─────────────────────────────────────────────────────────────────

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct{ base }

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	return r.write(func(d *data) error {
		d.products[p.ID] = *p
		return nil
	})
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	r.read(func(d *data) {
		if p, ok := d.products[id]; ok {
			out = ptr(p)
		}
	})
	return out, nil
}

func (r *ProductRepository) List(_ context.Context, onlyActive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	r.read(func(d *data) {
		for _, p := range d.products {
			if onlyActive && !p.IsActive {
				continue
			}
			out = append(out, ptr(p))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	return r.write(func(d *data) error {
		if _, ok := d.products[p.ID]; !ok {
			return domain.ErrNotFound
		}
		d.products[p.ID] = *p
		return nil
	})
}

// ── Inventory ────────────────────────────────────────────────────────────────

// InventoryRepository implementación en memoria de repository.InventoryRepository.
// GetForUpdate no bloquea nada adicional: las transacciones ya están serializadas.
type InventoryRepository struct{ base }

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

func (r *InventoryRepository) Create(_ context.Context, it *entity.InventoryItem) error {
	return r.write(func(d *data) error {
		for _, existing := range d.inventory {
			if existing.SKU == it.SKU {
				return domain.ErrDuplicate
			}
		}
		d.inventory[it.ID] = *it
		return nil
	})
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.read(func(d *data) {
		if it, ok := d.inventory[id]; ok {
			out = ptr(it)
		}
	})
	return out, nil
}

func (r *InventoryRepository) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.read(func(d *data) {
		for _, it := range d.inventory {
			if it.SKU == sku {
				out = ptr(it)
				return
			}
		}
	})
	return out, nil
}

func (r *InventoryRepository) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *InventoryRepository) List(_ context.Context, onlyActive bool) ([]*entity.InventoryItem, error) {
	return r.filter(func(it entity.InventoryItem) bool { return !onlyActive || it.IsActive }), nil
}

func (r *InventoryRepository) ListLowStock(_ context.Context) ([]*entity.InventoryItem, error) {
	return r.filter(func(it entity.InventoryItem) bool { return it.IsActive && it.IsLowStock() }), nil
}

func (r *InventoryRepository) filter(keep func(entity.InventoryItem) bool) []*entity.InventoryItem {
	var out []*entity.InventoryItem
	r.read(func(d *data) {
		for _, it := range d.inventory {
			if keep(it) {
				out = append(out, ptr(it))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *InventoryRepository) Update(_ context.Context, it *entity.InventoryItem) error {
	return r.write(func(d *data) error {
		cur, ok := d.inventory[it.ID]
		if !ok {
			return domain.ErrNotFound
		}
		for id, other := range d.inventory {
			if id != it.ID && other.SKU == it.SKU {
				return domain.ErrDuplicate
			}
		}
		v := *it
		v.CurrentStock = cur.CurrentStock
		d.inventory[it.ID] = v
		return nil
	})
}

func (r *InventoryRepository) SetStock(_ context.Context, id string, stock, unitCost decimal.Decimal, lastPurchase *time.Time) error {
	return r.write(func(d *data) error {
		it, ok := d.inventory[id]
		if !ok {
			return domain.ErrNotFound
		}
		it.CurrentStock = stock
		it.UnitCost = unitCost
		if lastPurchase != nil {
			it.LastPurchaseDate = ptr(*lastPurchase)
		}
		it.UpdatedAt = time.Now().UTC()
		d.inventory[id] = it
		return nil
	})
}

// InventoryLogRepository implementación en memoria de repository.InventoryLogRepository.
type InventoryLogRepository struct{ base }

var _ repository.InventoryLogRepository = (*InventoryLogRepository)(nil)

func (r *InventoryLogRepository) Create(_ context.Context, l *entity.InventoryLog) error {
	return r.write(func(d *data) error {
		d.inventoryLogs = append(d.inventoryLogs, *l)
		return nil
	})
}

func (r *InventoryLogRepository) ListByItem(_ context.Context, inventoryID string, limit int) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	r.read(func(d *data) {
		for i := len(d.inventoryLogs) - 1; i >= 0; i-- {
			if d.inventoryLogs[i].InventoryID != inventoryID {
				continue
			}
			out = append(out, ptr(d.inventoryLogs[i]))
			if limit > 0 && len(out) == limit {
				return
			}
		}
	})
	return out, nil
}
