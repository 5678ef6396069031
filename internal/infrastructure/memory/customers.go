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

// ── Customers ────────────────────────────────────────────────────────────────

// CustomerRepository implementación en memoria de repository.CustomerRepository.
type CustomerRepository struct{ base }

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	return r.write(func(d *data) error {
		d.customers[c.ID] = *c
		return nil
	})
}

func (r *CustomerRepository) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	r.read(func(d *data) {
		if c, ok := d.customers[id]; ok {
			out = ptr(c)
		}
	})
	return out, nil
}

func (r *CustomerRepository) GetByPhone(_ context.Context, phone string) (*entity.Customer, error) {
	var out *entity.Customer
	r.read(func(d *data) {
		for _, c := range d.customers {
			if c.Phone == phone {
				out = ptr(c)
				return
			}
		}
	})
	return out, nil
}

func (r *CustomerRepository) List(_ context.Context, search string, limit, offset int) ([]*entity.Customer, error) {
	q := strings.ToLower(strings.TrimSpace(search))
	var out []*entity.Customer
	r.read(func(d *data) {
		for _, c := range d.customers {
			if q != "" && !strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(c.Phone, q) && !strings.Contains(strings.ToLower(c.VehicleNumber), q) {
				continue
			}
			out = append(out, ptr(c))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].JoinDate.After(out[j].JoinDate) })
	return page(out, limit, offset), nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	return r.write(func(d *data) error {
		cur, ok := d.customers[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		v := *c
		v.TotalVisits = cur.TotalVisits
		v.TotalSpending = cur.TotalSpending
		d.customers[c.ID] = v
		return nil
	})
}

func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	return r.write(func(d *data) error {
		if _, ok := d.customers[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.customers, id)
		return nil
	})
}

func (r *CustomerRepository) IncrementStats(_ context.Context, id string, spending decimal.Decimal) error {
	return r.write(func(d *data) error {
		c, ok := d.customers[id]
		if !ok {
			return domain.ErrNotFound
		}
		c.TotalVisits++
		c.TotalSpending = c.TotalSpending.Add(spending)
		c.UpdatedAt = time.Now().UTC()
		d.customers[id] = c
		return nil
	})
}

// ── Memberships ──────────────────────────────────────────────────────────────

// MembershipRepository implementación en memoria de repository.MembershipRepository.
type MembershipRepository struct{ base }

var _ repository.MembershipRepository = (*MembershipRepository)(nil)

func (r *MembershipRepository) Create(_ context.Context, m *entity.Membership) error {
	return r.write(func(d *data) error {
		d.memberships[m.ID] = *m
		return nil
	})
}

func (r *MembershipRepository) GetByID(_ context.Context, id string) (*entity.Membership, error) {
	var out *entity.Membership
	r.read(func(d *data) {
		if m, ok := d.memberships[id]; ok {
			out = ptr(m)
		}
	})
	return out, nil
}

func (r *MembershipRepository) GetForUpdate(ctx context.Context, id string) (*entity.Membership, error) {
	return r.GetByID(ctx, id)
}

func (r *MembershipRepository) ListByCustomer(_ context.Context, customerID string) ([]*entity.Membership, error) {
	return r.filter(func(m entity.Membership) bool { return m.CustomerID == customerID }, true), nil
}

func (r *MembershipRepository) List(_ context.Context) ([]*entity.Membership, error) {
	return r.filter(func(entity.Membership) bool { return true }, false), nil
}

func (r *MembershipRepository) ListEndingBetween(_ context.Context, from, to time.Time) ([]*entity.Membership, error) {
	return r.filter(func(m entity.Membership) bool {
		return !m.EndDate.Before(from) && m.EndDate.Before(to)
	}, true), nil
}

// filter asc=true ordena por creación ascendente; false, descendente.
func (r *MembershipRepository) filter(keep func(entity.Membership) bool, asc bool) []*entity.Membership {
	var out []*entity.Membership
	r.read(func(d *data) {
		for _, m := range d.memberships {
			if keep(m) {
				out = append(out, ptr(m))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MembershipRepository) SetEndDate(_ context.Context, id string, end time.Time) error {
	return r.write(func(d *data) error {
		m, ok := d.memberships[id]
		if !ok {
			return domain.ErrNotFound
		}
		m.EndDate = end
		d.memberships[id] = m
		return nil
	})
}

func (r *MembershipRepository) RecordUse(_ context.Context, id string, usedAt time.Time) (int, error) {
	var count int
	err := r.write(func(d *data) error {
		m, ok := d.memberships[id]
		if !ok {
			return domain.ErrNotFound
		}
		m.UsageCount++
		m.LastUsed = ptr(usedAt)
		d.memberships[id] = m
		count = m.UsageCount
		return nil
	})
	return count, err
}

func (r *MembershipRepository) SyncCustomerName(_ context.Context, customerID, name string) error {
	return r.write(func(d *data) error {
		for id, m := range d.memberships {
			if m.CustomerID == customerID {
				m.CustomerName = name
				d.memberships[id] = m
			}
		}
		return nil
	})
}

func (r *MembershipRepository) Delete(_ context.Context, id string) error {
	return r.write(func(d *data) error {
		if _, ok := d.memberships[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.memberships, id)
		return nil
	})
}

// MembershipUsageRepository implementación en memoria de repository.MembershipUsageRepository.
type MembershipUsageRepository struct{ base }

var _ repository.MembershipUsageRepository = (*MembershipUsageRepository)(nil)

func (r *MembershipUsageRepository) Create(_ context.Context, u *entity.MembershipUsage) error {
	return r.write(func(d *data) error {
		day := u.UsedAt.UTC().Format(time.DateOnly)
		for _, existing := range d.usages {
			if existing.MembershipID == u.MembershipID && existing.UsedAt.UTC().Format(time.DateOnly) == day {
				return domain.ErrMembershipUsedToday
			}
		}
		d.usages = append(d.usages, *u)
		return nil
	})
}

func (r *MembershipUsageRepository) ExistsSince(_ context.Context, membershipID string, since time.Time) (bool, error) {
	found := false
	r.read(func(d *data) {
		for _, u := range d.usages {
			if u.MembershipID == membershipID && !u.UsedAt.Before(since) {
				found = true
				return
			}
		}
	})
	return found, nil
}

func (r *MembershipUsageRepository) ListByMembership(_ context.Context, membershipID string) ([]*entity.MembershipUsage, error) {
	var out []*entity.MembershipUsage
	r.read(func(d *data) {
		for i := len(d.usages) - 1; i >= 0; i-- {
			if d.usages[i].MembershipID == membershipID {
				out = append(out, ptr(d.usages[i]))
			}
		}
	})
	return out, nil
}

func (r *MembershipUsageRepository) DeleteByMembership(_ context.Context, membershipID string) error {
	return r.write(func(d *data) error {
		kept := d.usages[:0:0]
		for _, u := range d.usages {
			if u.MembershipID != membershipID {
				kept = append(kept, u)
			}
		}
		d.usages = kept
		return nil
	})
}

func page[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
