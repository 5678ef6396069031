package repository

import (
	"context"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

// PromotionRepository define el puerto de persistencia para Promotion.
type PromotionRepository interface {
	// Create devuelve domain.ErrDuplicate si ya hay una promoción activa con el mismo código.
	Create(ctx context.Context, p *entity.Promotion) error
	GetByID(ctx context.Context, id string) (*entity.Promotion, error)
	GetActiveByCode(ctx context.Context, code string) (*entity.Promotion, error)
	List(ctx context.Context) ([]*entity.Promotion, error)
	Update(ctx context.Context, p *entity.Promotion) error
	Delete(ctx context.Context, id string) error
	// IncrementUsage suma un uso solo si la promoción sigue activa y bajo su límite.
	// Devuelve domain.ErrPromotionExhausted si no se actualizó ninguna fila.
	IncrementUsage(ctx context.Context, id string) (usageCount int, err error)
}

// ExpenseRepository gastos operativos.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	List(ctx context.Context, from, to *time.Time) ([]*entity.Expense, error)
	Delete(ctx context.Context, id string) error
}

// PayoutRepository pagos de comisiones.
type PayoutRepository interface {
	Create(ctx context.Context, p *entity.CommissionPayout) error
	List(ctx context.Context, userID string) ([]*entity.CommissionPayout, error)
}

// LandingConfigRepository registro único de la landing.
type LandingConfigRepository interface {
	// Get devuelve (nil, nil) si aún no se ha guardado.
	Get(ctx context.Context) (*entity.LandingConfig, error)
	Save(ctx context.Context, cfg *entity.LandingConfig) error
}
