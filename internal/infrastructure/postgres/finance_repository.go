package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var (
	_ repository.PromotionRepository     = (*PromotionRepo)(nil)
	_ repository.ExpenseRepository       = (*ExpenseRepo)(nil)
	_ repository.PayoutRepository        = (*PayoutRepo)(nil)
	_ repository.LandingConfigRepository = (*LandingRepo)(nil)
)

// ── Promociones ──────────────────────────────────────────────────────────────

const promotionColumns = `id, code, name, description, promotion_type, value, min_purchase, max_discount,
	start_date, end_date, usage_limit, usage_count, is_active, created_at`

// PromotionRepo implementa repository.PromotionRepository.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador.
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

func scanPromotion(row pgx.Row) (*entity.Promotion, error) {
	var p entity.Promotion
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.PromotionType, &p.Value, &p.MinPurchase,
		&p.MaxDiscount, &p.StartDate, &p.EndDate, &p.UsageLimit, &p.UsageCount, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepo) Create(ctx context.Context, p *entity.Promotion) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO promotions (`+promotionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Code, p.Name, p.Description, p.PromotionType, p.Value, p.MinPurchase, p.MaxDiscount,
		p.StartDate, p.EndDate, p.UsageLimit, p.UsageCount, p.IsActive, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

func (r *PromotionRepo) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	return r.getOne(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
}

func (r *PromotionRepo) GetActiveByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	return r.getOne(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE upper(code) = upper($1) AND is_active`, code)
}

func (r *PromotionRepo) getOne(ctx context.Context, sql, arg string) (*entity.Promotion, error) {
	p, err := scanPromotion(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return p, nil
}

func (r *PromotionRepo) List(ctx context.Context) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update no toca usage_count: solo IncrementUsage lo modifica.
func (r *PromotionRepo) Update(ctx context.Context, p *entity.Promotion) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE promotions
		SET code = $2, name = $3, description = $4, promotion_type = $5, value = $6, min_purchase = $7,
		    max_discount = $8, start_date = $9, end_date = $10, usage_limit = $11, is_active = $12
		WHERE id = $1`,
		p.ID, p.Code, p.Name, p.Description, p.PromotionType, p.Value, p.MinPurchase, p.MaxDiscount,
		p.StartDate, p.EndDate, p.UsageLimit, p.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PromotionRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementUsage UPDATE condicional: dos canjes simultáneos del último cupo no pueden pasar ambos.
func (r *PromotionRepo) IncrementUsage(ctx context.Context, id string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		UPDATE promotions SET usage_count = usage_count + 1
		WHERE id = $1 AND is_active AND (usage_limit IS NULL OR usage_count < usage_limit)
		RETURNING usage_count`, id).Scan(&count)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrPromotionExhausted
		}
		return 0, fmt.Errorf("increment promotion usage: %w", err)
	}
	return count, nil
}

// ── Gastos ───────────────────────────────────────────────────────────────────

// ExpenseRepo implementa repository.ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (id, date, category, amount, description, payment_method, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Date, e.Category, e.Amount, e.Description, e.PaymentMethod, e.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List rango [from, to); nil no filtra.
func (r *ExpenseRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, date, category, amount, description, payment_method, created_by
		FROM expenses
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date < $2)
		ORDER BY date DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &e.Amount, &e.Description, &e.PaymentMethod, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Pagos de comisión ────────────────────────────────────────────────────────

// PayoutRepo implementa repository.PayoutRepository.
type PayoutRepo struct {
	q Querier
}

// NewPayoutRepository construye el adaptador.
func NewPayoutRepository(q Querier) *PayoutRepo {
	return &PayoutRepo{q: q}
}

func (r *PayoutRepo) Create(ctx context.Context, p *entity.CommissionPayout) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO commission_payouts (id, user_id, user_name, amount, date, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.UserName, p.Amount, p.Date, p.Notes, p.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

// List userID vacío devuelve todos.
func (r *PayoutRepo) List(ctx context.Context, userID string) ([]*entity.CommissionPayout, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, user_name, amount, date, notes, created_by
		FROM commission_payouts
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommissionPayout
	for rows.Next() {
		var p entity.CommissionPayout
		if err := rows.Scan(&p.ID, &p.UserID, &p.UserName, &p.Amount, &p.Date, &p.Notes, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ── Landing ──────────────────────────────────────────────────────────────────

// LandingRepo fila única (id = 1).
type LandingRepo struct {
	q Querier
}

// NewLandingRepository construye el adaptador.
func NewLandingRepository(q Querier) *LandingRepo {
	return &LandingRepo{q: q}
}

func (r *LandingRepo) Get(ctx context.Context) (*entity.LandingConfig, error) {
	var c entity.LandingConfig
	err := r.q.QueryRow(ctx, `
		SELECT hero_title_1, hero_title_2, hero_subtitle, open_hours, contact_phone,
		       contact_address, contact_maps_url, contact_instagram, updated_at
		FROM landing_config WHERE id = 1`).Scan(
		&c.HeroTitle1, &c.HeroTitle2, &c.HeroSubtitle, &c.OpenHours, &c.ContactPhone,
		&c.ContactAddress, &c.ContactMapsURL, &c.ContactInstagram, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get landing config: %w", err)
	}
	return &c, nil
}

func (r *LandingRepo) Save(ctx context.Context, c *entity.LandingConfig) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO landing_config (id, hero_title_1, hero_title_2, hero_subtitle, open_hours, contact_phone,
		                            contact_address, contact_maps_url, contact_instagram, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
		    hero_title_1 = EXCLUDED.hero_title_1, hero_title_2 = EXCLUDED.hero_title_2,
		    hero_subtitle = EXCLUDED.hero_subtitle, open_hours = EXCLUDED.open_hours,
		    contact_phone = EXCLUDED.contact_phone, contact_address = EXCLUDED.contact_address,
		    contact_maps_url = EXCLUDED.contact_maps_url, contact_instagram = EXCLUDED.contact_instagram,
		    updated_at = EXCLUDED.updated_at`,
		c.HeroTitle1, c.HeroTitle2, c.HeroSubtitle, c.OpenHours, c.ContactPhone,
		c.ContactAddress, c.ContactMapsURL, c.ContactInstagram, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save landing config: %w", err)
	}
	return nil
}
