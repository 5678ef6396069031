package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var (
	_ repository.ServiceRepository = (*ServiceRepo)(nil)
	_ repository.ProductRepository = (*ProductRepo)(nil)
)

// ── Servicios ────────────────────────────────────────────────────────────────

const serviceColumns = `id, name, description, price, duration_minutes, category, commission_rate,
	bom, image_url, is_active, created_at, updated_at`

// ServiceRepo servicios sobre PostgreSQL; el BOM se guarda como JSONB.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.Category,
		&s.CommissionRate, &s.BOM, &s.ImageURL, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func bomOrEmpty(bom []entity.BOMLine) []entity.BOMLine {
	if bom == nil {
		return []entity.BOMLine{}
	}
	return bom
}

func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO services (`+serviceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.Category, s.CommissionRate,
		bomOrEmpty(s.BOM), s.ImageURL, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	s, err := scanService(r.q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

func (r *ServiceRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Service, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+serviceColumns+` FROM services
		WHERE (NOT $1 OR is_active)
		ORDER BY category, name`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE services SET name = $2, description = $3, price = $4, duration_minutes = $5, category = $6,
			commission_rate = $7, bom = $8, image_url = $9, is_active = $10, updated_at = $11
		WHERE id = $1`,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.Category, s.CommissionRate,
		bomOrEmpty(s.BOM), s.ImageURL, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

const productColumns = `id, name, description, price, category, inventory_id, image_url,
	min_stock_level, is_active, created_at, updated_at`

// ProductRepo productos de venta directa sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p           entity.Product
		inventoryID *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &inventoryID, &p.ImageURL,
		&p.MinStockLevel, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.InventoryID = derefString(inventoryID)
	return &p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, nullString(p.InventoryID), p.ImageURL,
		p.MinStockLevel, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE (NOT $1 OR is_active)
		ORDER BY name`, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET name = $2, description = $3, price = $4, category = $5, inventory_id = $6,
			image_url = $7, min_stock_level = $8, is_active = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.Category, nullString(p.InventoryID), p.ImageURL,
		p.MinStockLevel, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
