package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

var (
	_ repository.ShiftRepository     = (*ShiftRepo)(nil)
	_ repository.PettyCashRepository = (*PettyCashRepo)(nil)
)

const shiftColumns = `id, kasir_id, kasir_name, opening_balance, opening_denominations, closing_balance,
	closing_denominations, petty_cash_total, cash_drop_total, expected_balance, variance,
	opened_at, closed_at, status, notes`

// ShiftRepo turnos de caja sobre PostgreSQL. El índice parcial shifts_one_open_per_kasir
// impide dos turnos abiertos del mismo kasir.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	if err := row.Scan(&s.ID, &s.KasirID, &s.KasirName, &s.OpeningBalance, &s.OpeningDenominations,
		&s.ClosingBalance, &s.ClosingDenominations, &s.PettyCashTotal, &s.CashDropTotal,
		&s.ExpectedBalance, &s.Variance, &s.OpenedAt, &s.ClosedAt, &s.Status, &s.Notes); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO shifts (`+shiftColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.KasirID, s.KasirName, s.OpeningBalance, s.OpeningDenominations, s.ClosingBalance,
		s.ClosingDenominations, s.PettyCashTotal, s.CashDropTotal, s.ExpectedBalance, s.Variance,
		s.OpenedAt, s.ClosedAt, s.Status, s.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShiftAlreadyOpen
		}
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id)
}

// GetForUpdate bloqueo exclusivo: el cierre espera a las ventas que tienen el turno en FOR SHARE.
func (r *ShiftRepo) GetForUpdate(ctx context.Context, id string) (*entity.Shift, error) {
	return r.getOne(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1 FOR UPDATE`, id)
}

func (r *ShiftRepo) GetOpenByKasir(ctx context.Context, kasirID string) (*entity.Shift, error) {
	return r.getOne(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE kasir_id = $1 AND status = 'open'`, kasirID)
}

func (r *ShiftRepo) GetOpenByKasirForShare(ctx context.Context, kasirID string) (*entity.Shift, error) {
	return r.getOne(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE kasir_id = $1 AND status = 'open' FOR SHARE`, kasirID)
}

func (r *ShiftRepo) getOne(ctx context.Context, sql, arg string) (*entity.Shift, error) {
	s, err := scanShift(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) List(ctx context.Context, f repository.ShiftFilter) ([]*entity.Shift, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+shiftColumns+` FROM shifts
		WHERE ($1 = '' OR kasir_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY opened_at DESC
		LIMIT $3`, f.KasirID, f.Status, limit)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// AddCashMovement incremento atómico; solo afecta turnos abiertos.
func (r *ShiftRepo) AddCashMovement(ctx context.Context, shiftID string, amount decimal.Decimal, cashDrop bool) error {
	column := "petty_cash_total"
	if cashDrop {
		column = "cash_drop_total"
	}
	tag, err := r.q.Exec(ctx, `
		UPDATE shifts SET `+column+` = `+column+` + $2
		WHERE id = $1 AND status = 'open'`, shiftID, amount)
	if err != nil {
		return fmt.Errorf("add cash movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrClosed(ctx, shiftID)
	}
	return nil
}

// Close guarda el cuadre; falla con ErrShiftClosed si el turno ya se cerró.
func (r *ShiftRepo) Close(ctx context.Context, s *entity.Shift) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE shifts SET closing_balance = $2, closing_denominations = $3, expected_balance = $4, variance = $5,
			closed_at = $6, status = $7, notes = $8
		WHERE id = $1 AND status = 'open'`,
		s.ID, s.ClosingBalance, s.ClosingDenominations, s.ExpectedBalance, s.Variance, s.ClosedAt, s.Status, s.Notes,
	)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrClosed(ctx, s.ID)
	}
	return nil
}

func (r *ShiftRepo) missingOrClosed(ctx context.Context, id string) error {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return domain.ErrShiftClosed
}

// ── Caja chica ───────────────────────────────────────────────────────────────

// PettyCashRepo movimientos de caja chica y retiros.
type PettyCashRepo struct {
	q Querier
}

// NewPettyCashRepository construye el adaptador.
func NewPettyCashRepository(q Querier) *PettyCashRepo {
	return &PettyCashRepo{q: q}
}

func (r *PettyCashRepo) Create(ctx context.Context, l *entity.PettyCashLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO petty_cash_logs (id, shift_id, amount, category, description, created_by_id, created_by_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.ShiftID, l.Amount, l.Category, l.Description, l.CreatedByID, l.CreatedByName, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert petty cash log: %w", err)
	}
	return nil
}

func (r *PettyCashRepo) ListByShift(ctx context.Context, shiftID string) ([]*entity.PettyCashLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, shift_id, amount, category, description, created_by_id, created_by_name, created_at
		FROM petty_cash_logs WHERE shift_id = $1 ORDER BY created_at`, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list petty cash: %w", err)
	}
	defer rows.Close()
	var list []*entity.PettyCashLog
	for rows.Next() {
		var l entity.PettyCashLog
		if err := rows.Scan(&l.ID, &l.ShiftID, &l.Amount, &l.Category, &l.Description,
			&l.CreatedByID, &l.CreatedByName, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan petty cash: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
