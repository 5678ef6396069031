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
	_ repository.UserRepository   = (*UserRepo)(nil)
	_ repository.OutletRepository = (*OutletRepo)(nil)
)

const userColumns = `id, username, password_hash, full_name, email, phone, role,
	outlet_id, outlet_name, is_active, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u        entity.User
		outletID *string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Phone, &u.Role,
		&outletID, &u.OutletName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.OutletID = derefString(outletID)
	return &u, nil
}

// Create persiste un nuevo usuario. El username es único sin distinguir mayúsculas.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		u.ID, u.Username, u.PasswordHash, u.FullName, u.Email, u.Phone, u.Role,
		nullString(u.OutletID), u.OutletName, u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername búsqueda sin distinguir mayúsculas.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// List usuarios filtrados por rol y estado, más recientes primero.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	roles := make([]string, 0, len(f.Roles))
	for _, role := range f.Roles {
		roles = append(roles, string(role))
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE (cardinality($1::text[]) = 0 OR role = ANY($1))
		  AND (NOT $2 OR is_active)
		ORDER BY created_at DESC`, roles, f.OnlyActive)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza el perfil; no toca la contraseña.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET full_name = $2, email = $3, phone = $4, role = $5,
			outlet_id = $6, outlet_name = $7, is_active = $8, updated_at = $9
		WHERE id = $1`,
		u.ID, u.FullName, u.Email, u.Phone, u.Role, nullString(u.OutletID), u.OutletName, u.IsActive, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) SetPassword(ctx context.Context, id, hash string) error {
	return r.exec(ctx, "set password", `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, id, hash)
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.exec(ctx, "set active", `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
}

// SyncOutletName copia el nombre nuevo del outlet en sus usuarios.
func (r *UserRepo) SyncOutletName(ctx context.Context, outletID, name string) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET outlet_name = $2 WHERE outlet_id = $1`, outletID, name)
	if err != nil {
		return fmt.Errorf("sync outlet name: %w", err)
	}
	return nil
}

func (r *UserRepo) CountActiveByOutlet(ctx context.Context, outletID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM users WHERE outlet_id = $1 AND is_active`, outletID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by outlet: %w", err)
	}
	return n, nil
}

func (r *UserRepo) exec(ctx context.Context, op, sql string, args ...any) error {
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Outlets ──────────────────────────────────────────────────────────────────

const outletColumns = `id, name, address, phone, manager_name, is_active, created_at, updated_at`

// OutletRepo sucursales sobre PostgreSQL.
type OutletRepo struct {
	q Querier
}

// NewOutletRepository construye el adaptador.
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

func scanOutlet(row pgx.Row) (*entity.Outlet, error) {
	var o entity.Outlet
	if err := row.Scan(&o.ID, &o.Name, &o.Address, &o.Phone, &o.ManagerName, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutletRepo) Create(ctx context.Context, o *entity.Outlet) error {
	_, err := r.q.Exec(ctx, `INSERT INTO outlets (`+outletColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.Name, o.Address, o.Phone, o.ManagerName, o.IsActive, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

func (r *OutletRepo) GetByID(ctx context.Context, id string) (*entity.Outlet, error) {
	o, err := scanOutlet(r.q.QueryRow(ctx, `SELECT `+outletColumns+` FROM outlets WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	return o, nil
}

func (r *OutletRepo) List(ctx context.Context) ([]*entity.Outlet, error) {
	rows, err := r.q.Query(ctx, `SELECT `+outletColumns+` FROM outlets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		o, err := scanOutlet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *OutletRepo) Update(ctx context.Context, o *entity.Outlet) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE outlets SET name = $2, address = $3, phone = $4, manager_name = $5, is_active = $6, updated_at = $7
		WHERE id = $1`, o.ID, o.Name, o.Address, o.Phone, o.ManagerName, o.IsActive, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OutletRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM outlets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
