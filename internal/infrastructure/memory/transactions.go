package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// TransactionRepository implementación en memoria de repository.TransactionRepository.
type TransactionRepository struct{ base }

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(_ context.Context, t *entity.Transaction) error {
	return r.write(func(d *data) error {
		for _, existing := range d.transactions {
			if existing.InvoiceNumber == t.InvoiceNumber {
				return domain.ErrDuplicate
			}
			if t.IdempotencyKey != "" && existing.IdempotencyKey == t.IdempotencyKey {
				return domain.ErrDuplicate
			}
		}
		v := *t
		v.Items = slices.Clone(t.Items)
		d.transactions[t.ID] = v
		return nil
	})
}

func (r *TransactionRepository) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	var out *entity.Transaction
	r.read(func(d *data) {
		if t, ok := d.transactions[id]; ok {
			out = copyTxn(t)
		}
	})
	return out, nil
}

func (r *TransactionRepository) GetByIdempotencyKey(_ context.Context, key string) (*entity.Transaction, error) {
	var out *entity.Transaction
	if key == "" {
		return nil, nil
	}
	r.read(func(d *data) {
		for _, t := range d.transactions {
			if t.IdempotencyKey == key {
				out = copyTxn(t)
				return
			}
		}
	})
	return out, nil
}

func (r *TransactionRepository) List(_ context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	r.read(func(d *data) {
		for _, t := range d.transactions {
			if f.KasirID != "" && t.KasirID != f.KasirID {
				continue
			}
			if f.CustomerID != "" && t.CustomerID != f.CustomerID {
				continue
			}
			if f.ShiftID != "" && t.ShiftID != f.ShiftID {
				continue
			}
			if f.From != nil && t.CreatedAt.Before(*f.From) {
				continue
			}
			if f.To != nil && !t.CreatedAt.Before(*f.To) {
				continue
			}
			out = append(out, copyTxn(t))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, f.Limit, 0), nil
}

func (r *TransactionRepository) ListByShift(ctx context.Context, shiftID string) ([]*entity.Transaction, error) {
	return r.List(ctx, repository.TransactionFilter{ShiftID: shiftID})
}

func copyTxn(t entity.Transaction) *entity.Transaction {
	t.Items = slices.Clone(t.Items)
	return &t
}

// InvoiceCounterRepository implementación en memoria de repository.InvoiceCounterRepository.
type InvoiceCounterRepository struct{ base }

var _ repository.InvoiceCounterRepository = (*InvoiceCounterRepository)(nil)

func (r *InvoiceCounterRepository) Next(_ context.Context, day time.Time) (int64, error) {
	var seq int64
	err := r.write(func(d *data) error {
		key := day.UTC().Format(time.DateOnly)
		d.invoiceCounters[key]++
		seq = d.invoiceCounters[key]
		return nil
	})
	return seq, err
}

func (r *InvoiceCounterRepository) PurgeBefore(_ context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.write(func(d *data) error {
		limit := day.UTC().Format(time.DateOnly)
		for key := range d.invoiceCounters {
			if key < limit {
				delete(d.invoiceCounters, key)
				n++
			}
		}
		return nil
	})
	return n, err
}
