package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para servicios y productos. El stock se maneja vía ledger.
type CatalogUseCase struct {
	store repository.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store repository.Store) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// ── Servicios ────────────────────────────────────────────────────────────────

// CreateService crea un servicio. Cada línea del BOM debe apuntar a un ítem de inventario existente.
func (uc *CatalogUseCase) CreateService(ctx context.Context, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	bom, err := uc.resolveBOM(ctx, in.BOM)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	svc := &entity.Service{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Category:        in.Category,
		CommissionRate:  in.CommissionRate,
		BOM:             bom,
		ImageURL:        in.ImageURL,
		IsActive:        in.IsActive == nil || *in.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.store.Services.Create(ctx, svc); err != nil {
		return nil, err
	}
	out := dto.ToServiceResponse(svc)
	return &out, nil
}

// GetService obtiene un servicio.
func (uc *CatalogUseCase) GetService(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := uc.getService(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToServiceResponse(svc)
	return &out, nil
}

// ListServices servicios activos. Es también el listado público.
func (uc *CatalogUseCase) ListServices(ctx context.Context) ([]dto.ServiceResponse, error) {
	list, err := uc.store.Services.List(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToServiceResponse(s))
	}
	return out, nil
}

// UpdateService reemplaza los datos del servicio, BOM incluido.
func (uc *CatalogUseCase) UpdateService(ctx context.Context, id string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := uc.getService(ctx, id)
	if err != nil {
		return nil, err
	}
	bom, err := uc.resolveBOM(ctx, in.BOM)
	if err != nil {
		return nil, err
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.Price = in.Price
	svc.DurationMinutes = in.DurationMinutes
	svc.Category = in.Category
	svc.CommissionRate = in.CommissionRate
	svc.BOM = bom
	svc.ImageURL = in.ImageURL
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}
	svc.UpdatedAt = time.Now().UTC()
	if err := uc.store.Services.Update(ctx, svc); err != nil {
		return nil, err
	}
	out := dto.ToServiceResponse(svc)
	return &out, nil
}

// DeleteService desactiva el servicio.
func (uc *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	svc, err := uc.getService(ctx, id)
	if err != nil {
		return err
	}
	svc.IsActive = false
	svc.UpdatedAt = time.Now().UTC()
	return uc.store.Services.Update(ctx, svc)
}

// resolveBOM valida los ítems y completa nombre y unidad desde el inventario.
func (uc *CatalogUseCase) resolveBOM(ctx context.Context, lines []dto.BOMLineDTO) ([]entity.BOMLine, error) {
	bom := make([]entity.BOMLine, 0, len(lines))
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: cantidad del BOM debe ser mayor que 0", domain.ErrInvalidInput)
		}
		item, err := uc.store.Inventory.GetByID(ctx, l.InventoryID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: ítem de inventario %s del BOM", domain.ErrNotFound, l.InventoryID)
		}
		bom = append(bom, entity.BOMLine{
			InventoryID:   item.ID,
			InventoryName: item.Name,
			Quantity:      l.Quantity,
			Unit:          item.Unit,
		})
	}
	return bom, nil
}

func (uc *CatalogUseCase) getService(ctx context.Context, id string) (*entity.Service, error) {
	svc, err := uc.store.Services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("%w: servicio", domain.ErrNotFound)
	}
	return svc, nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// CreateProduct crea un producto. inventory_id, si viene, debe existir.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	item, err := uc.linkedItem(ctx, in.InventoryID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		InventoryID:   in.InventoryID,
		ImageURL:      in.ImageURL,
		MinStockLevel: in.MinStockLevel,
		IsActive:      in.IsActive == nil || *in.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.store.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p, item)
	return &out, nil
}

// GetProduct obtiene un producto con su stock.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := uc.linkedItem(ctx, p.InventoryID)
	if err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p, item)
	return &out, nil
}

// ListProducts productos activos enriquecidos con stock y unidad del inventario ligado.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.store.Products.List(ctx, true)
	if err != nil {
		return nil, err
	}
	items, err := uc.store.Inventory.List(ctx, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.InventoryItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p, byID[p.InventoryID]))
	}
	return out, nil
}

// UpdateProduct actualiza un producto.
func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	item, err := uc.linkedItem(ctx, in.InventoryID)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Category = in.Category
	p.InventoryID = in.InventoryID
	p.ImageURL = in.ImageURL
	p.MinStockLevel = in.MinStockLevel
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.store.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p, item)
	return &out, nil
}

// DeleteProduct desactiva el producto.
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.getProduct(ctx, id)
	if err != nil {
		return err
	}
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
	return uc.store.Products.Update(ctx, p)
}

func (uc *CatalogUseCase) getProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.store.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto", domain.ErrNotFound)
	}
	return p, nil
}

// linkedItem devuelve nil si id está vacío; NotFound si no existe.
func (uc *CatalogUseCase) linkedItem(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if id == "" {
		return nil, nil
	}
	item, err := uc.store.Inventory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem de inventario %s", domain.ErrNotFound, id)
	}
	return item, nil
}
