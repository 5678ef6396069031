package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// ── Promotions ───────────────────────────────────────────────────────────────

// PromotionRepository implementación en memoria de repository.PromotionRepository.
type PromotionRepository struct{ base }

var _ repository.PromotionRepository = (*PromotionRepository)(nil)

func (r *PromotionRepository) Create(_ context.Context, p *entity.Promotion) error {
	return r.write(func(d *data) error {
		if p.IsActive {
			for _, existing := range d.promotions {
				if existing.IsActive && strings.EqualFold(existing.Code, p.Code) {
					return domain.ErrDuplicate
				}
			}
		}
		d.promotions[p.ID] = *p
		return nil
	})
}

func (r *PromotionRepository) GetByID(_ context.Context, id string) (*entity.Promotion, error) {
	var out *entity.Promotion
	r.read(func(d *data) {
		if p, ok := d.promotions[id]; ok {
			out = ptr(p)
		}
	})
	return out, nil
}

func (r *PromotionRepository) GetActiveByCode(_ context.Context, code string) (*entity.Promotion, error) {
	var out *entity.Promotion
	r.read(func(d *data) {
		for _, p := range d.promotions {
			if p.IsActive && strings.EqualFold(p.Code, code) {
				out = ptr(p)
				return
			}
		}
	})
	return out, nil
}

func (r *PromotionRepository) List(_ context.Context) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	r.read(func(d *data) {
		for _, p := range d.promotions {
			out = append(out, ptr(p))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *PromotionRepository) Update(_ context.Context, p *entity.Promotion) error {
	return r.write(func(d *data) error {
		cur, ok := d.promotions[p.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if p.IsActive {
			for id, other := range d.promotions {
				if id != p.ID && other.IsActive && strings.EqualFold(other.Code, p.Code) {
					return domain.ErrDuplicate
				}
			}
		}
		v := *p
		v.UsageCount = cur.UsageCount
		d.promotions[p.ID] = v
		return nil
	})
}

func (r *PromotionRepository) Delete(_ context.Context, id string) error {
	return r.write(func(d *data) error {
		if _, ok := d.promotions[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.promotions, id)
		return nil
	})
}

func (r *PromotionRepository) IncrementUsage(_ context.Context, id string) (int, error) {
	var count int
	err := r.write(func(d *data) error {
		p, ok := d.promotions[id]
		if !ok || !p.IsActive || (p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit) {
			return domain.ErrPromotionExhausted
		}
		p.UsageCount++
		d.promotions[id] = p
		count = p.UsageCount
		return nil
	})
	return count, err
}

// ── Expenses & payouts ───────────────────────────────────────────────────────

// ExpenseRepository implementación en memoria de repository.ExpenseRepository.
type ExpenseRepository struct{ base }

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) Create(_ context.Context, e *entity.Expense) error {
	return r.write(func(d *data) error {
		d.expenses[e.ID] = *e
		return nil
	})
}

func (r *ExpenseRepository) List(_ context.Context, from, to *time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	r.read(func(d *data) {
		for _, e := range d.expenses {
			if from != nil && e.Date.Before(*from) {
				continue
			}
			if to != nil && !e.Date.Before(*to) {
				continue
			}
			out = append(out, ptr(e))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id string) error {
	return r.write(func(d *data) error {
		if _, ok := d.expenses[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.expenses, id)
		return nil
	})
}

// PayoutRepository implementación en memoria de repository.PayoutRepository.
type PayoutRepository struct{ base }

var _ repository.PayoutRepository = (*PayoutRepository)(nil)

func (r *PayoutRepository) Create(_ context.Context, p *entity.CommissionPayout) error {
	return r.write(func(d *data) error {
		d.payouts = append(d.payouts, *p)
		return nil
	})
}

func (r *PayoutRepository) List(_ context.Context, userID string) ([]*entity.CommissionPayout, error) {
	var out []*entity.CommissionPayout
	r.read(func(d *data) {
		for i := len(d.payouts) - 1; i >= 0; i-- {
			if userID == "" || d.payouts[i].UserID == userID {
				out = append(out, ptr(d.payouts[i]))
			}
		}
	})
	return out, nil
}

// ── Landing ──────────────────────────────────────────────────────────────────

// LandingConfigRepository implementación en memoria de repository.LandingConfigRepository.
type LandingConfigRepository struct{ base }

var _ repository.LandingConfigRepository = (*LandingConfigRepository)(nil)

func (r *LandingConfigRepository) Get(_ context.Context) (*entity.LandingConfig, error) {
	var out *entity.LandingConfig
	r.read(func(d *data) {
		if d.landing != nil {
			out = ptr(*d.landing)
		}
	})
	return out, nil
}

func (r *LandingConfigRepository) Save(_ context.Context, cfg *entity.LandingConfig) error {
	return r.write(func(d *data) error {
		d.landing = ptr(*cfg)
		return nil
	})
}

// ── Analytics ────────────────────────────────────────────────────────────────

// AnalyticsRepository implementación en memoria de repository.AnalyticsRepository.
type AnalyticsRepository struct{ base }

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

func (r *AnalyticsRepository) SalesSince(_ context.Context, since time.Time) (decimal.Decimal, int, error) {
	revenue, count := decimal.Zero, 0
	r.read(func(d *data) {
		for _, t := range d.transactions {
			if !t.CreatedAt.Before(since) {
				revenue = revenue.Add(t.Total)
				count++
			}
		}
	})
	return revenue, count, nil
}

func (r *AnalyticsRepository) MembershipCounts(_ context.Context, now, until time.Time) (int, int, error) {
	active, expiring := 0, 0
	r.read(func(d *data) {
		for _, m := range d.memberships {
			if m.EndDate.Before(now) {
				continue
			}
			active++
			if m.EndDate.Before(until) {
				expiring++
			}
		}
	})
	return active, expiring, nil
}

func (r *AnalyticsRepository) CountLowStock(_ context.Context) (int, error) {
	n := 0
	r.read(func(d *data) {
		for _, it := range d.inventory {
			if it.IsActive && it.IsLowStock() {
				n++
			}
		}
	})
	return n, nil
}

func (r *AnalyticsRepository) KasirPerformanceSince(_ context.Context, since time.Time) ([]repository.KasirPerformance, error) {
	byKasir := map[string]*repository.KasirPerformance{}
	r.read(func(d *data) {
		for _, t := range d.transactions {
			if t.CreatedAt.Before(since) {
				continue
			}
			kp, ok := byKasir[t.KasirID]
			if !ok {
				kp = &repository.KasirPerformance{KasirID: t.KasirID, KasirName: t.KasirName}
				byKasir[t.KasirID] = kp
			}
			kp.TransactionCount++
			kp.Revenue = kp.Revenue.Add(t.Total)
		}
	})
	out := make([]repository.KasirPerformance, 0, len(byKasir))
	for _, kp := range byKasir {
		out = append(out, *kp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out, nil
}
