package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	dompromo "github.com/jhoicas/otopia-pos/internal/domain/promotion"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// PromotionUseCase códigos promocionales.
type PromotionUseCase struct {
	store repository.Store
	now   func() time.Time
}

// NewPromotionUseCase construye el caso de uso.
func NewPromotionUseCase(store repository.Store) *PromotionUseCase {
	return &PromotionUseCase{store: store, now: time.Now}
}

// Create crea una promoción. El código se guarda en mayúsculas.
func (uc *PromotionUseCase) Create(ctx context.Context, in dto.PromotionRequest) (*dto.PromotionResponse, error) {
	p := &entity.Promotion{
		ID:        uuid.New().String(),
		IsActive:  in.IsActive == nil || *in.IsActive,
		CreatedAt: uc.now().UTC(),
	}
	if err := applyPromotion(p, in); err != nil {
		return nil, err
	}
	if err := uc.store.Promotions.Create(ctx, p); err != nil {
		return nil, duplicateCode(err, p.Code)
	}
	out := dto.ToPromotionResponse(p)
	return &out, nil
}

// Get obtiene una promoción.
func (uc *PromotionUseCase) Get(ctx context.Context, id string) (*dto.PromotionResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToPromotionResponse(p)
	return &out, nil
}

// List todas las promociones, más recientes primero.
func (uc *PromotionUseCase) List(ctx context.Context) ([]dto.PromotionResponse, error) {
	list, err := uc.store.Promotions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPromotionResponse(p))
	}
	return out, nil
}

// Update reemplaza los datos; el contador de uso se conserva.
func (uc *PromotionUseCase) Update(ctx context.Context, id string, in dto.PromotionRequest) (*dto.PromotionResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPromotion(p, in); err != nil {
		return nil, err
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := uc.store.Promotions.Update(ctx, p); err != nil {
		return nil, duplicateCode(err, p.Code)
	}
	out := dto.ToPromotionResponse(p)
	return &out, nil
}

// Delete elimina la promoción.
func (uc *PromotionUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Promotions.Delete(ctx, id)
}

// Validate calcula el descuento sin consumir un uso.
func (uc *PromotionUseCase) Validate(ctx context.Context, in dto.ValidatePromotionRequest) (*dto.ValidatePromotionResponse, error) {
	p, discount, err := uc.check(ctx, in)
	if err != nil {
		return nil, err
	}
	return &dto.ValidatePromotionResponse{
		Promotion:      dto.ToPromotionResponse(p),
		DiscountAmount: discount,
		FinalAmount:    in.Subtotal.Sub(discount),
	}, nil
}

// Redeem valida y consume un uso. El incremento es condicional en el repositorio,
// así dos canjes simultáneos no superan el límite.
func (uc *PromotionUseCase) Redeem(ctx context.Context, in dto.ValidatePromotionRequest) (*dto.ValidatePromotionResponse, error) {
	p, discount, err := uc.check(ctx, in)
	if err != nil {
		return nil, err
	}
	count, err := uc.store.Promotions.IncrementUsage(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.UsageCount = count
	return &dto.ValidatePromotionResponse{
		Promotion:      dto.ToPromotionResponse(p),
		DiscountAmount: discount,
		FinalAmount:    in.Subtotal.Sub(discount),
	}, nil
}

func (uc *PromotionUseCase) check(ctx context.Context, in dto.ValidatePromotionRequest) (*entity.Promotion, decimal.Decimal, error) {
	p, err := uc.store.Promotions.GetActiveByCode(ctx, strings.ToUpper(strings.TrimSpace(in.Code)))
	if err != nil {
		return nil, decimal.Zero, err
	}
	if p == nil {
		return nil, decimal.Zero, fmt.Errorf("%w: código promocional", domain.ErrNotFound)
	}
	discount, err := dompromo.Validate(p, in.Subtotal, uc.now())
	if err != nil {
		return nil, decimal.Zero, err
	}
	return p, discount, nil
}

func (uc *PromotionUseCase) get(ctx context.Context, id string) (*entity.Promotion, error) {
	p, err := uc.store.Promotions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: promoción", domain.ErrNotFound)
	}
	return p, nil
}

func applyPromotion(p *entity.Promotion, in dto.PromotionRequest) error {
	ptype := entity.PromotionType(in.PromotionType)
	if !ptype.Valid() {
		return fmt.Errorf("%w: tipo de promoción %q", domain.ErrInvalidInput, in.PromotionType)
	}
	if !in.EndDate.After(in.StartDate) {
		return fmt.Errorf("%w: end_date debe ser posterior a start_date", domain.ErrInvalidInput)
	}
	p.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	p.Name = in.Name
	p.Description = in.Description
	p.PromotionType = ptype
	p.Value = in.Value
	p.MinPurchase = in.MinPurchase
	p.MaxDiscount = in.MaxDiscount
	p.StartDate = in.StartDate.UTC()
	p.EndDate = in.EndDate.UTC()
	p.UsageLimit = in.UsageLimit
	return nil
}

func duplicateCode(err error, code string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return fmt.Errorf("%w: ya existe una promoción activa con el código %s", domain.ErrDuplicate, code)
	}
	return err
}
