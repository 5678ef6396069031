package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

// FinanceUseCase gastos operativos y pagos de comisiones.
type FinanceUseCase struct {
	store repository.Store
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(store repository.Store) *FinanceUseCase {
	return &FinanceUseCase{store: store}
}

// ── Gastos ───────────────────────────────────────────────────────────────────

// CreateExpense registra un gasto. Sin fecha se usa la actual.
func (uc *FinanceUseCase) CreateExpense(ctx context.Context, actor *entity.User, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e := &entity.Expense{
		ID:            uuid.New().String(),
		Date:          dateOrNow(in.Date),
		Category:      in.Category,
		Amount:        in.Amount,
		Description:   in.Description,
		PaymentMethod: in.PaymentMethod,
		CreatedBy:     actor.FullName,
	}
	if err := uc.store.Expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.ToExpenseResponse(e)
	return &out, nil
}

// ListExpenses gastos en el rango [from, to); ambos extremos son opcionales.
func (uc *FinanceUseCase) ListExpenses(ctx context.Context, from, to *time.Time) ([]dto.ExpenseResponse, error) {
	list, err := uc.store.Expenses.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToExpenseResponse(e))
	}
	return out, nil
}

// DeleteExpense elimina un gasto.
func (uc *FinanceUseCase) DeleteExpense(ctx context.Context, id string) error {
	return uc.store.Expenses.Delete(ctx, id)
}

// ── Pagos de comisión ────────────────────────────────────────────────────────

// CreatePayout registra el pago y el gasto correspondiente en la misma transacción.
func (uc *FinanceUseCase) CreatePayout(ctx context.Context, actor *entity.User, in dto.PayoutRequest) (*dto.PayoutResponse, error) {
	var payout *entity.CommissionPayout
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		staff, err := repos.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if staff == nil {
			return fmt.Errorf("%w: usuario", domain.ErrNotFound)
		}
		date := dateOrNow(in.Date)
		payout = &entity.CommissionPayout{
			ID:        uuid.New().String(),
			UserID:    staff.ID,
			UserName:  staff.FullName,
			Amount:    in.Amount,
			Date:      date,
			Notes:     in.Notes,
			CreatedBy: actor.FullName,
		}
		if err := repos.Payouts.Create(ctx, payout); err != nil {
			return err
		}
		return repos.Expenses.Create(ctx, &entity.Expense{
			ID:            uuid.New().String(),
			Date:          date,
			Category:      entity.PayoutExpenseCategory,
			Amount:        in.Amount,
			Description:   "Komisi " + staff.FullName,
			PaymentMethod: "transfer",
			CreatedBy:     actor.FullName,
		})
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToPayoutResponse(payout)
	return &out, nil
}

// ListPayouts pagos; userID vacío lista todos.
func (uc *FinanceUseCase) ListPayouts(ctx context.Context, userID string) ([]dto.PayoutResponse, error) {
	list, err := uc.store.Payouts.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayoutResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPayoutResponse(p))
	}
	return out, nil
}

func dateOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
