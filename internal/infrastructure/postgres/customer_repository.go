package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var (
	_ repository.CustomerRepository        = (*CustomerRepo)(nil)
	_ repository.MembershipRepository      = (*MembershipRepo)(nil)
	_ repository.MembershipUsageRepository = (*MembershipUsageRepo)(nil)
)

// ── Clientes ─────────────────────────────────────────────────────────────────

const customerColumns = `id, name, phone, email, vehicle_number, vehicle_type, total_visits, total_spending,
	join_date, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.VehicleNumber, &c.VehicleType,
		&c.TotalVisits, &c.TotalSpending, &c.JoinDate, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Phone, c.Email, c.VehicleNumber, c.VehicleType, c.TotalVisits, c.TotalSpending,
		c.JoinDate, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cliente %s", domain.ErrDuplicate, c.ID)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByPhone obtiene un cliente por teléfono.
func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)
}

func (r *CustomerRepo) getOne(ctx context.Context, sql string, arg any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List clientes con búsqueda opcional por nombre, teléfono o placa, y paginación.
func (r *CustomerRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+customerColumns+` FROM customers
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
			OR vehicle_number ILIKE '%' || $1 || '%'
		ORDER BY join_date DESC
		LIMIT $2 OFFSET $3`, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del cliente; las estadísticas no se tocan.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE customers SET name = $2, phone = $3, email = $4, vehicle_number = $5, vehicle_type = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Phone, c.Email, c.VehicleNumber, c.VehicleType, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cliente %s", domain.ErrDuplicate, c.ID)
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementStats suma en la misma sentencia UPDATE, sin leer antes.
func (r *CustomerRepo) IncrementStats(ctx context.Context, id string, spending decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE customers SET total_visits = total_visits + 1, total_spending = total_spending + $2, updated_at = now()
		WHERE id = $1`, id, spending)
	if err != nil {
		return fmt.Errorf("increment customer stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Membresías ───────────────────────────────────────────────────────────────

const membershipColumns = `id, customer_id, customer_name, membership_type, start_date, end_date,
	usage_count, last_used, price, notes, created_at`

// MembershipRepo membresías sobre PostgreSQL.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador.
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

func scanMembership(row pgx.Row) (*entity.Membership, error) {
	var m entity.Membership
	if err := row.Scan(&m.ID, &m.CustomerID, &m.CustomerName, &m.MembershipType, &m.StartDate, &m.EndDate,
		&m.UsageCount, &m.LastUsed, &m.Price, &m.Notes, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO memberships (`+membershipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.CustomerID, m.CustomerName, m.MembershipType, m.StartDate, m.EndDate,
		m.UsageCount, m.LastUsed, m.Price, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *MembershipRepo) GetByID(ctx context.Context, id string) (*entity.Membership, error) {
	return r.getOne(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1`, id)
}

// GetForUpdate serializa canjes y extensiones concurrentes de la misma membresía.
func (r *MembershipRepo) GetForUpdate(ctx context.Context, id string) (*entity.Membership, error) {
	return r.getOne(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE id = $1 FOR UPDATE`, id)
}

func (r *MembershipRepo) getOne(ctx context.Context, sql, id string) (*entity.Membership, error) {
	m, err := scanMembership(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

func (r *MembershipRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Membership, error) {
	return r.list(ctx, `SELECT `+membershipColumns+` FROM memberships WHERE customer_id = $1 ORDER BY created_at`, customerID)
}

func (r *MembershipRepo) List(ctx context.Context) ([]*entity.Membership, error) {
	return r.list(ctx, `SELECT `+membershipColumns+` FROM memberships ORDER BY created_at DESC`)
}

func (r *MembershipRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]*entity.Membership, error) {
	return r.list(ctx, `
		SELECT `+membershipColumns+` FROM memberships
		WHERE end_date >= $1 AND end_date < $2
		ORDER BY created_at`, from, to)
}

func (r *MembershipRepo) list(ctx context.Context, sql string, args ...any) ([]*entity.Membership, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MembershipRepo) SetEndDate(ctx context.Context, id string, end time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE memberships SET end_date = $2 WHERE id = $1`, id, end)
	if err != nil {
		return fmt.Errorf("set membership end date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RecordUse incrementa el contador en la base y devuelve el valor resultante.
func (r *MembershipRepo) RecordUse(ctx context.Context, id string, usedAt time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `
		UPDATE memberships SET usage_count = usage_count + 1, last_used = $2
		WHERE id = $1
		RETURNING usage_count`, id, usedAt).Scan(&count)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("record membership use: %w", err)
	}
	return count, nil
}

func (r *MembershipRepo) SyncCustomerName(ctx context.Context, customerID, name string) error {
	if _, err := r.q.Exec(ctx, `UPDATE memberships SET customer_name = $2 WHERE customer_id = $1`, customerID, name); err != nil {
		return fmt.Errorf("sync membership customer name: %w", err)
	}
	return nil
}

func (r *MembershipRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Canjes ───────────────────────────────────────────────────────────────────

const usageColumns = `id, membership_id, customer_id, service_id, service_name, kasir_id, kasir_name, used_at`

// MembershipUsageRepo canjes de membresía; el índice único (membership_id, used_on)
// garantiza un canje por día aun con solicitudes concurrentes.
type MembershipUsageRepo struct {
	q Querier
}

// NewMembershipUsageRepository construye el adaptador.
func NewMembershipUsageRepository(q Querier) *MembershipUsageRepo {
	return &MembershipUsageRepo{q: q}
}

func (r *MembershipUsageRepo) Create(ctx context.Context, u *entity.MembershipUsage) error {
	usedAt := u.UsedAt.UTC()
	_, err := r.q.Exec(ctx, `
		INSERT INTO membership_usages (`+usageColumns+`, used_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.MembershipID, u.CustomerID, u.ServiceID, u.ServiceName, u.KasirID, u.KasirName,
		usedAt, usedAt.Truncate(24*time.Hour),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMembershipUsedToday
		}
		return fmt.Errorf("insert membership usage: %w", err)
	}
	return nil
}

func (r *MembershipUsageRepo) ExistsSince(ctx context.Context, membershipID string, since time.Time) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM membership_usages WHERE membership_id = $1 AND used_at >= $2)`,
		membershipID, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership usage: %w", err)
	}
	return exists, nil
}

func (r *MembershipUsageRepo) ListByMembership(ctx context.Context, membershipID string) ([]*entity.MembershipUsage, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+usageColumns+` FROM membership_usages
		WHERE membership_id = $1 ORDER BY used_at DESC`, membershipID)
	if err != nil {
		return nil, fmt.Errorf("list membership usages: %w", err)
	}
	defer rows.Close()
	var list []*entity.MembershipUsage
	for rows.Next() {
		var u entity.MembershipUsage
		if err := rows.Scan(&u.ID, &u.MembershipID, &u.CustomerID, &u.ServiceID, &u.ServiceName,
			&u.KasirID, &u.KasirName, &u.UsedAt); err != nil {
			return nil, fmt.Errorf("scan membership usage: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *MembershipUsageRepo) DeleteByMembership(ctx context.Context, membershipID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM membership_usages WHERE membership_id = $1`, membershipID); err != nil {
		return fmt.Errorf("delete membership usages: %w", err)
	}
	return nil
}
