// Package shift orquesta el ciclo de vida del turno de caja: apertura, movimientos de caja chica,
// cuadre y cierre.
package shift

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	domshift "github.com/jhoicas/otopia-pos/internal/domain/shift"
)

// UseCase casos de uso del turno de caja.
type UseCase struct {
	store    repository.Store
	exporter ports.ReportExporter
	metrics  ports.Metrics
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. exporter puede ser nil si no se exponen reportes.
func NewUseCase(store repository.Store, exporter ports.ReportExporter, metrics ports.Metrics, log zerolog.Logger) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		store:    store,
		exporter: exporter,
		metrics:  metrics,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Open abre un turno. Conflict si el kasir ya tiene uno abierto; un kasir solo abre el propio.
func (uc *UseCase) Open(ctx context.Context, actor *entity.User, in dto.OpenShiftRequest) (*dto.ShiftResponse, error) {
	kasirID := in.KasirID
	if kasirID == "" {
		kasirID = actor.ID
	}
	if kasirID != actor.ID && !actor.Role.CanManage() {
		return nil, fmt.Errorf("%w: solo puede abrir su propio turno", domain.ErrForbidden)
	}
	kasir := actor
	if kasirID != actor.ID {
		var err error
		if kasir, err = uc.store.Users.GetByID(ctx, kasirID); err != nil {
			return nil, err
		}
		if kasir == nil {
			return nil, fmt.Errorf("%w: kasir", domain.ErrNotFound)
		}
	}
	if in.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening_balance no puede ser negativo", domain.ErrInvalidInput)
	}

	// Chequeo previo para un mensaje claro; el índice único parcial es la garantía real.
	open, err := uc.store.Shifts.GetOpenByKasir(ctx, kasirID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrShiftAlreadyOpen
	}

	s := &entity.Shift{
		ID:                   uuid.New().String(),
		KasirID:              kasir.ID,
		KasirName:            kasir.FullName,
		OpeningBalance:       in.OpeningBalance,
		OpeningDenominations: in.OpeningDenominations.ToEntity(),
		PettyCashTotal:       decimal.Zero,
		CashDropTotal:        decimal.Zero,
		OpenedAt:             uc.now(),
		Status:               entity.ShiftStatusOpen,
	}
	if err := uc.store.Shifts.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("shift_id", s.ID).Str("kasir", s.KasirName).Str("opening", s.OpeningBalance.String()).Msg("turno abierto")
	out := dto.ToShiftResponse(s)
	return &out, nil
}

// AddCashMovement registra caja chica o retiro ("Cash Drop") y actualiza el acumulador del turno
// con un incremento atómico en la misma transacción.
func (uc *UseCase) AddCashMovement(ctx context.Context, actor *entity.User, shiftID string, in dto.CashMovementRequest) (*dto.PettyCashLogResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount debe ser mayor que 0", domain.ErrInvalidInput)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category es obligatoria", domain.ErrInvalidInput)
	}
	entry := &entity.PettyCashLog{
		ID:            uuid.New().String(),
		ShiftID:       shiftID,
		Amount:        in.Amount,
		Category:      category,
		Description:   in.Description,
		CreatedByID:   actor.ID,
		CreatedByName: actor.FullName,
		CreatedAt:     uc.now(),
	}
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		s, err := repos.Shifts.GetByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: turno", domain.ErrNotFound)
		}
		if err := authorizeShift(actor, s); err != nil {
			return err
		}
		if !s.IsOpen() {
			return domain.ErrShiftClosed
		}
		if err := repos.Shifts.AddCashMovement(ctx, shiftID, in.Amount, entry.IsCashDrop()); err != nil {
			return err
		}
		return repos.PettyCash.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToPettyCashLogResponse(entry)
	return &out, nil
}

// Close cierra el turno: bloquea la fila, recalcula las ventas en efectivo desde las transacciones
// del turno y persiste saldo esperado y diferencia. La diferencia nunca impide el cierre.
func (uc *UseCase) Close(ctx context.Context, actor *entity.User, shiftID string, in dto.CloseShiftRequest) (*dto.ShiftResponse, error) {
	if in.ClosingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: closing_balance no puede ser negativo", domain.ErrInvalidInput)
	}
	var closed *entity.Shift
	err := uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		s, err := repos.Shifts.GetForUpdate(ctx, shiftID)
		if err != nil {
			return err
		}
		if s == nil {
			return fmt.Errorf("%w: turno", domain.ErrNotFound)
		}
		if err := authorizeShift(actor, s); err != nil {
			return err
		}
		if !s.IsOpen() {
			return domain.ErrShiftClosed
		}
		txns, err := repos.Transactions.ListByShift(ctx, s.ID)
		if err != nil {
			return err
		}
		rec := domshift.Reconcile(s, txns)
		closing := in.ClosingBalance
		expected := rec.ExpectedBalance
		variance := domshift.Variance(closing, expected)
		now := uc.now()

		s.ClosingBalance = &closing
		s.ClosingDenominations = in.ClosingDenominations.ToEntity()
		s.ExpectedBalance = &expected
		s.Variance = &variance
		s.ClosedAt = &now
		s.Status = entity.ShiftStatusClosed
		s.Notes = in.Notes
		if err := repos.Shifts.Close(ctx, s); err != nil {
			return err
		}
		closed = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.ShiftClosed(closed.KasirName, *closed.Variance)
	ev := uc.log.Info()
	if !closed.Variance.IsZero() {
		ev = uc.log.Warn()
	}
	ev.Str("shift_id", closed.ID).
		Str("kasir", closed.KasirName).
		Str("expected", closed.ExpectedBalance.String()).
		Str("closing", closed.ClosingBalance.String()).
		Str("variance", closed.Variance.String()).
		Msg("turno cerrado")
	out := dto.ToShiftResponse(closed)
	return &out, nil
}

// Summary cuadre previo al cierre con desglose por medio de pago.
func (uc *UseCase) Summary(ctx context.Context, actor *entity.User, shiftID string) (*dto.ShiftSummaryResponse, error) {
	report, err := uc.report(ctx, actor, shiftID)
	if err != nil {
		return nil, err
	}
	byMethod := make(map[string]decimal.Decimal, len(report.Reconciliation.ByPaymentMethod))
	for m, v := range report.Reconciliation.ByPaymentMethod {
		byMethod[string(m)] = v
	}
	return &dto.ShiftSummaryResponse{
		Shift:            dto.ToShiftResponse(report.Shift),
		TotalCashSales:   report.Reconciliation.TotalCashSales,
		ExpectedBalance:  report.Reconciliation.ExpectedBalance,
		ByPaymentMethod:  byMethod,
		TransactionCount: report.Reconciliation.TransactionCount,
		PettyCashLogs:    dto.ToPettyCashLogResponses(report.PettyCash),
	}, nil
}

// Current turno abierto del kasir, o Shift=nil (no es un error).
func (uc *UseCase) Current(ctx context.Context, kasirID string) (*dto.CurrentShiftResponse, error) {
	s, err := uc.store.Shifts.GetOpenByKasir(ctx, kasirID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &dto.CurrentShiftResponse{}, nil
	}
	out := dto.ToShiftResponse(s)
	return &dto.CurrentShiftResponse{Shift: &out}, nil
}

// List turnos; un kasir solo ve los propios.
func (uc *UseCase) List(ctx context.Context, actor *entity.User, kasirID, status string, limit int) ([]dto.ShiftResponse, error) {
	if actor.Role == entity.RoleKasir {
		kasirID = actor.ID
	}
	shifts, err := uc.store.Shifts.List(ctx, repository.ShiftFilter{KasirID: kasirID, Status: status, Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, dto.ToShiftResponse(s))
	}
	return out, nil
}

// Details turno con sus ventas y movimientos de caja.
func (uc *UseCase) Details(ctx context.Context, actor *entity.User, shiftID string) (*dto.ShiftDetailsResponse, error) {
	report, err := uc.report(ctx, actor, shiftID)
	if err != nil {
		return nil, err
	}
	return &dto.ShiftDetailsResponse{
		Shift:         dto.ToShiftResponse(report.Shift),
		Transactions:  dto.ToTransactionResponses(report.Transactions),
		PettyCashLogs: dto.ToPettyCashLogResponses(report.PettyCash),
	}, nil
}

// Export reporte .xlsx del turno.
func (uc *UseCase) Export(ctx context.Context, actor *entity.User, shiftID string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("exportador de reportes no configurado")
	}
	report, err := uc.report(ctx, actor, shiftID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ShiftReport(*report)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("shift-%s-%s.xlsx", report.Shift.OpenedAt.Format("20060102"), report.Shift.KasirName)
	return data, name, nil
}

func (uc *UseCase) report(ctx context.Context, actor *entity.User, shiftID string) (*ports.ShiftReport, error) {
	s, err := uc.store.Shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: turno", domain.ErrNotFound)
	}
	if err := authorizeShift(actor, s); err != nil {
		return nil, err
	}
	txns, err := uc.store.Transactions.ListByShift(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	logs, err := uc.store.PettyCash.ListByShift(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &ports.ShiftReport{
		Shift:          s,
		Reconciliation: domshift.Reconcile(s, txns),
		Transactions:   txns,
		PettyCash:      logs,
	}, nil
}

// authorizeShift un kasir solo opera sobre sus propios turnos.
func authorizeShift(actor *entity.User, s *entity.Shift) error {
	if actor.Role == entity.RoleKasir && s.KasirID != actor.ID {
		return fmt.Errorf("%w: el turno pertenece a otro kasir", domain.ErrForbidden)
	}
	return nil
}
