package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepository implementación en memoria de repository.UserRepository.
type UserRepository struct{ base }

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	return r.write(func(d *data) error {
		for _, existing := range d.users {
			if strings.EqualFold(existing.Username, u.Username) {
				return domain.ErrUsernameTaken
			}
		}
		d.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	r.read(func(d *data) {
		if u, ok := d.users[id]; ok {
			out = ptr(u)
		}
	})
	return out, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	r.read(func(d *data) {
		for _, u := range d.users {
			if strings.EqualFold(u.Username, username) {
				out = ptr(u)
				return
			}
		}
	})
	return out, nil
}

func (r *UserRepository) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	r.read(func(d *data) {
		for _, u := range d.users {
			if f.OnlyActive && !u.IsActive {
				continue
			}
			if len(f.Roles) > 0 && !slices.Contains(f.Roles, u.Role) {
				continue
			}
			out = append(out, ptr(u))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	return r.write(func(d *data) error {
		if _, ok := d.users[u.ID]; !ok {
			return domain.ErrNotFound
		}
		d.users[u.ID] = *u
		return nil
	})
}

func (r *UserRepository) SetPassword(_ context.Context, id, hash string) error {
	return r.patch(id, func(u *entity.User) { u.PasswordHash = hash })
}

func (r *UserRepository) SetActive(_ context.Context, id string, active bool) error {
	return r.patch(id, func(u *entity.User) { u.IsActive = active })
}

func (r *UserRepository) SyncOutletName(_ context.Context, outletID, name string) error {
	return r.write(func(d *data) error {
		for id, u := range d.users {
			if u.OutletID == outletID {
				u.OutletName = name
				d.users[id] = u
			}
		}
		return nil
	})
}

func (r *UserRepository) CountActiveByOutlet(_ context.Context, outletID string) (int, error) {
	n := 0
	r.read(func(d *data) {
		for _, u := range d.users {
			if u.IsActive && u.OutletID == outletID {
				n++
			}
		}
	})
	return n, nil
}

func (r *UserRepository) patch(id string, fn func(u *entity.User)) error {
	return r.write(func(d *data) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		fn(&u)
		u.UpdatedAt = time.Now().UTC()
		d.users[id] = u
		return nil
	})
}

// ── Outlets ──────────────────────────────────────────────────────────────────

// OutletRepository implementación en memoria de repository.OutletRepository.
type OutletRepository struct{ base }

var _ repository.OutletRepository = (*OutletRepository)(nil)

func (r *OutletRepository) Create(_ context.Context, o *entity.Outlet) error {
	return r.write(func(d *data) error {
		d.outlets[o.ID] = *o
		return nil
	})
}

func (r *OutletRepository) GetByID(_ context.Context, id string) (*entity.Outlet, error) {
	var out *entity.Outlet
	r.read(func(d *data) {
		if o, ok := d.outlets[id]; ok {
			out = ptr(o)
		}
	})
	return out, nil
}

func (r *OutletRepository) List(_ context.Context) ([]*entity.Outlet, error) {
	var out []*entity.Outlet
	r.read(func(d *data) {
		for _, o := range d.outlets {
			out = append(out, ptr(o))
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *OutletRepository) Update(_ context.Context, o *entity.Outlet) error {
	return r.write(func(d *data) error {
		if _, ok := d.outlets[o.ID]; !ok {
			return domain.ErrNotFound
		}
		d.outlets[o.ID] = *o
		return nil
	})
}

func (r *OutletRepository) Delete(_ context.Context, id string) error {
	return r.write(func(d *data) error {
		if _, ok := d.outlets[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.outlets, id)
		return nil
	})
}
