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
	_ repository.TransactionRepository    = (*TransactionRepo)(nil)
	_ repository.InvoiceCounterRepository = (*InvoiceCounterRepo)(nil)
)

const transactionColumns = `id, invoice_number, idempotency_key, kasir_id, kasir_name, customer_id, customer_name,
	shift_id, items, subtotal, total, payment_method, payment_received, change_amount, total_commission,
	notes, created_at`

// TransactionRepo ventas sobre PostgreSQL; las líneas se guardan como JSONB.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		t                       entity.Transaction
		idempotency, customerID *string
	)
	if err := row.Scan(&t.ID, &t.InvoiceNumber, &idempotency, &t.KasirID, &t.KasirName, &customerID, &t.CustomerName,
		&t.ShiftID, &t.Items, &t.Subtotal, &t.Total, &t.PaymentMethod, &t.PaymentReceived, &t.ChangeAmount,
		&t.TotalCommission, &t.Notes, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.IdempotencyKey = derefString(idempotency)
	t.CustomerID = derefString(customerID)
	return &t, nil
}

// Create inserta la venta. Los índices únicos de invoice_number e idempotency_key
// se traducen a domain.ErrDuplicate.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	items := t.Items
	if items == nil {
		items = []entity.LineItem{}
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		t.ID, t.InvoiceNumber, nullString(t.IdempotencyKey), t.KasirID, t.KasirName, nullString(t.CustomerID),
		t.CustomerName, t.ShiftID, items, t.Subtotal, t.Total, t.PaymentMethod, t.PaymentReceived,
		t.ChangeAmount, t.TotalCommission, t.Notes, t.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w (%s)", domain.ErrDuplicate, violatedConstraint(err))
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

func (r *TransactionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Transaction, error) {
	if key == "" {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE idempotency_key = $1`, key)
}

func (r *TransactionRepo) getOne(ctx context.Context, sql, arg string) (*entity.Transaction, error) {
	t, err := scanTransaction(r.q.QueryRow(ctx, sql, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List filtros opcionales; To es exclusivo. Limit 0 = sin límite.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE ($1 = '' OR kasir_id = $1)
		  AND ($2 = '' OR customer_id = $2)
		  AND ($3 = '' OR shift_id = $3)
		  AND ($4::timestamptz IS NULL OR created_at >= $4)
		  AND ($5::timestamptz IS NULL OR created_at < $5)
		ORDER BY created_at DESC
		LIMIT NULLIF($6::int, 0)`,
		f.KasirID, f.CustomerID, f.ShiftID, f.From, f.To, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) ListByShift(ctx context.Context, shiftID string) ([]*entity.Transaction, error) {
	return r.List(ctx, repository.TransactionFilter{ShiftID: shiftID})
}

// ── Numeración ───────────────────────────────────────────────────────────────

// InvoiceCounterRepo contador diario. El UPSERT toma el bloqueo de la fila del día,
// así dos ventas simultáneas nunca obtienen el mismo consecutivo.
type InvoiceCounterRepo struct {
	q Querier
}

// NewInvoiceCounterRepository construye el adaptador.
func NewInvoiceCounterRepository(q Querier) *InvoiceCounterRepo {
	return &InvoiceCounterRepo{q: q}
}

func (r *InvoiceCounterRepo) Next(ctx context.Context, day time.Time) (int64, error) {
	var seq int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO invoice_counters (day, last_seq) VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET last_seq = invoice_counters.last_seq + 1
		RETURNING last_seq`, day.UTC().Truncate(24*time.Hour)).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return seq, nil
}

func (r *InvoiceCounterRepo) PurgeBefore(ctx context.Context, day time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoice_counters WHERE day < $1`, day.UTC().Truncate(24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("purge invoice counters: %w", err)
	}
	return tag.RowsAffected(), nil
}
