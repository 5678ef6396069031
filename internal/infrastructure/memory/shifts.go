package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// ShiftRepository implementación en memoria de repository.ShiftRepository.
type ShiftRepository struct{ base }

var _ repository.ShiftRepository = (*ShiftRepository)(nil)

func (r *ShiftRepository) Create(_ context.Context, s *entity.Shift) error {
	return r.write(func(d *data) error {
		for _, existing := range d.shifts {
			if existing.KasirID == s.KasirID && existing.IsOpen() {
				return domain.ErrShiftAlreadyOpen
			}
		}
		d.shifts[s.ID] = *s
		return nil
	})
}

func (r *ShiftRepository) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	var out *entity.Shift
	r.read(func(d *data) {
		if s, ok := d.shifts[id]; ok {
			out = ptr(s)
		}
	})
	return out, nil
}

func (r *ShiftRepository) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *ShiftRepository) GetOpenByKasir(_ context.Context, kasirID string) (*entity.Shift, error) {
	var out *entity.Shift
	r.read(func(d *data) {
		for _, s := range d.shifts {
			if s.KasirID == kasirID && s.IsOpen() {
				out = ptr(s)
				return
			}
		}
	})
	return out, nil
}

func (r *ShiftRepository) GetOpenByKasirForShare(ctx context.Context, kasirID string) (*entity.Shift, error) {
	return r.GetOpenByKasir(ctx, kasirID)
}

func (r *ShiftRepository) List(_ context.Context, f repository.ShiftFilter) ([]*entity.Shift, error) {
	var out []*entity.Shift
	r.read(func(d *data) {
		for _, s := range d.shifts {
			if f.KasirID != "" && s.KasirID != f.KasirID {
				continue
			}
			if f.Status != "" && s.Status != f.Status {
				continue
			}
			out = append(out, ptr(s))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return page(out, f.Limit, 0), nil
}

func (r *ShiftRepository) AddCashMovement(_ context.Context, shiftID string, amount decimal.Decimal, cashDrop bool) error {
	return r.write(func(d *data) error {
		s, ok := d.shifts[shiftID]
		if !ok {
			return domain.ErrNotFound
		}
		if !s.IsOpen() {
			return domain.ErrShiftClosed
		}
		if cashDrop {
			s.CashDropTotal = s.CashDropTotal.Add(amount)
		} else {
			s.PettyCashTotal = s.PettyCashTotal.Add(amount)
		}
		d.shifts[shiftID] = s
		return nil
	})
}

func (r *ShiftRepository) Close(_ context.Context, s *entity.Shift) error {
	return r.write(func(d *data) error {
		cur, ok := d.shifts[s.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if !cur.IsOpen() {
			return domain.ErrShiftClosed
		}
		d.shifts[s.ID] = *s
		return nil
	})
}

// PettyCashRepository implementación en memoria de repository.PettyCashRepository.
type PettyCashRepository struct{ base }

var _ repository.PettyCashRepository = (*PettyCashRepository)(nil)

func (r *PettyCashRepository) Create(_ context.Context, l *entity.PettyCashLog) error {
	return r.write(func(d *data) error {
		d.pettyCash = append(d.pettyCash, *l)
		return nil
	})
}

func (r *PettyCashRepository) ListByShift(_ context.Context, shiftID string) ([]*entity.PettyCashLog, error) {
	var out []*entity.PettyCashLog
	r.read(func(d *data) {
		for _, l := range d.pettyCash {
			if l.ShiftID == shiftID {
				out = append(out, ptr(l))
			}
		}
	})
	return out, nil
}
