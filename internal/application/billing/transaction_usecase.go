// Package billing registra ventas (transacciones) y expone sus consultas, recibos y clientes.
package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/inventory"
	"github.com/jhoicas/otopia-pos/internal/application/notification"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
	"github.com/jhoicas/otopia-pos/internal/domain/sales"
)

// ReasonSale motivo registrado en la bitácora de inventario por cada descuento de una venta.
const ReasonSale = entity.StockReasonSale

// Config opciones del registro de ventas.
type Config struct {
	BusinessName   string
	AutoReceipt    bool          // encola el recibo por WhatsApp si el cliente tiene teléfono
	IdempotencyTTL time.Duration // vigencia de la guarda de llaves en curso
}

// TransactionUseCase crea ventas y descuenta el inventario en una sola transacción.
type TransactionUseCase struct {
	store    repository.Store
	idem     ports.IdempotencyStore
	queue    ports.NotificationQueue
	receipts ports.ReceiptPDFGenerator
	exporter ports.ReportExporter
	metrics  ports.Metrics
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time
}

// Deps colaboradores opcionales; los nil se omiten.
type Deps struct {
	Idempotency ports.IdempotencyStore
	Queue       ports.NotificationQueue
	Receipts    ports.ReceiptPDFGenerator
	Exporter    ports.ReportExporter
	Metrics     ports.Metrics
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(store repository.Store, deps Deps, cfg Config, log zerolog.Logger) *TransactionUseCase {
	if deps.Metrics == nil {
		deps.Metrics = ports.NopMetrics{}
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 30 * time.Second
	}
	return &TransactionUseCase{
		store:    store,
		idem:     deps.Idempotency,
		queue:    deps.Queue,
		receipts: deps.Receipts,
		exporter: deps.Exporter,
		metrics:  deps.Metrics,
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create registra la venta del kasir autenticado.
//
// Todo ocurre en una transacción: turno abierto (FOR SHARE), totales y comisiones, consecutivo de
// factura, alta de la venta, estadísticas del cliente y descuentos de inventario por el ledger.
// Si cualquier paso falla no queda nada aplicado. Con idempotencyKey, repetir la llave devuelve la
// venta original y replayed=true solo al mismo kasir; una llave ajena es ErrDuplicate.
func (uc *TransactionUseCase) Create(ctx context.Context, kasir *entity.User, in dto.CreateTransactionRequest, idempotencyKey string) (out *dto.TransactionResponse, replayed bool, err error) {
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, false, fmt.Errorf("%w: payment_method desconocido", domain.ErrInvalidInput)
	}
	idempotencyKey = strings.TrimSpace(idempotencyKey)

	if idempotencyKey != "" {
		if prev, err := uc.byIdempotencyKey(ctx, kasir, idempotencyKey); err != nil || prev != nil {
			return prev, prev != nil, err
		}
		if uc.idem != nil {
			ok, err := uc.idem.Acquire(ctx, idemGuardKey(idempotencyKey), uc.cfg.IdempotencyTTL)
			if err != nil {
				// Sin guarda se sigue: el índice único de idempotency_key es la garantía durable.
				uc.log.Warn().Err(err).Msg("guarda de idempotencia no disponible")
			} else if !ok {
				return nil, false, domain.ErrInProgress
			} else {
				defer func() {
					if rerr := uc.idem.Release(context.WithoutCancel(ctx), idemGuardKey(idempotencyKey)); rerr != nil {
						uc.log.Warn().Err(rerr).Msg("liberar guarda de idempotencia")
					}
				}()
			}
		}
	}

	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.LineItem{
			ServiceID:      strings.TrimSpace(it.ServiceID),
			ProductID:      strings.TrimSpace(it.ProductID),
			Name:           it.Name,
			Quantity:       it.Quantity,
			Price:          it.Price,
			TechnicianID:   it.TechnicianID,
			TechnicianName: it.TechnicianName,
		})
	}

	now := uc.now()
	txn := &entity.Transaction{
		ID:              uuid.New().String(),
		IdempotencyKey:  idempotencyKey,
		KasirID:         kasir.ID,
		KasirName:       kasir.FullName,
		CustomerID:      strings.TrimSpace(in.CustomerID),
		PaymentMethod:   method,
		PaymentReceived: in.PaymentReceived,
		Notes:           in.Notes,
		CreatedAt:       now,
	}
	var customer *entity.Customer

	err = uc.store.Tx.Run(ctx, func(repos repository.TxRepos) error {
		// ── 1. Turno abierto (bloqueo compartido contra un cierre concurrente) ──
		shift, err := repos.Shifts.GetOpenByKasirForShare(ctx, kasir.ID)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.ErrNoOpenShift
		}
		txn.ShiftID = shift.ID

		// ── 2. Catálogo: tasas de comisión y BOM ──
		services := make(map[string]*entity.Service)
		products := make(map[string]*entity.Product)
		rates := make(map[string]decimal.Decimal)
		for _, it := range items {
			switch {
			case it.ServiceID != "" && it.ProductID != "":
				return fmt.Errorf("%w: cada ítem debe referenciar un servicio o un producto", domain.ErrInvalidInput)
			case it.ServiceID != "":
				if _, ok := services[it.ServiceID]; ok {
					continue
				}
				svc, err := repos.Services.GetByID(ctx, it.ServiceID)
				if err != nil {
					return err
				}
				if svc == nil {
					return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, it.ServiceID)
				}
				services[svc.ID] = svc
				rates[svc.ID] = svc.CommissionRate
			case it.ProductID != "":
				if _, ok := products[it.ProductID]; ok {
					continue
				}
				p, err := repos.Products.GetByID(ctx, it.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return fmt.Errorf("%w: producto %s", domain.ErrNotFound, it.ProductID)
				}
				products[p.ID] = p
			}
		}

		// ── 3. Totales, cambio y comisiones ──
		totals, err := sales.Price(items, rates, in.PaymentReceived)
		if err != nil {
			return err
		}
		txn.Items = totals.Items
		txn.Subtotal = totals.Subtotal
		txn.Total = totals.Total
		txn.ChangeAmount = totals.ChangeAmount
		txn.TotalCommission = totals.TotalCommission

		// ── 4. Cliente ──
		if txn.CustomerID != "" {
			customer, err = repos.Customers.GetByID(ctx, txn.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return fmt.Errorf("%w: cliente", domain.ErrNotFound)
			}
			txn.CustomerName = customer.Name
		}

		// ── 5. Consecutivo diario y alta ──
		day := sales.InvoiceDay(now)
		seq, err := repos.InvoiceCounters.Next(ctx, day)
		if err != nil {
			return err
		}
		txn.InvoiceNumber = sales.InvoiceNumber(day, seq)
		if err := repos.Transactions.Create(ctx, txn); err != nil {
			return err
		}
		if customer != nil {
			if err := repos.Customers.IncrementStats(ctx, customer.ID, txn.Total); err != nil {
				return err
			}
		}

		// ── 6. Inventario: BOM de servicios y productos con stock ──
		base := inventory.StockChange{
			Reason:      ReasonSale,
			ReferenceID: txn.ID,
			UserID:      kasir.ID,
			UserName:    kasir.FullName,
		}
		for _, it := range txn.Items {
			if it.IsService() {
				if err := inventory.DeductBOM(ctx, repos, services[it.ServiceID], it.Quantity, base, now); err != nil {
					return err
				}
				continue
			}
			p := products[it.ProductID]
			if p.InventoryID == "" {
				continue
			}
			ch := base
			ch.InventoryID = p.InventoryID
			ch.Delta = it.Quantity.Neg()
			if _, err := inventory.ApplyInTx(ctx, repos, ch, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Carrera sin guarda Redis: otra solicitud con la misma llave ganó el índice único.
		if idempotencyKey != "" && errors.Is(err, domain.ErrDuplicate) {
			prev, perr := uc.byIdempotencyKey(ctx, kasir, idempotencyKey)
			if perr != nil {
				return nil, false, perr
			}
			if prev != nil {
				return prev, true, nil
			}
		}
		return nil, false, err
	}

	uc.metrics.TransactionRecorded(txn.PaymentMethod, txn.Total)
	uc.log.Info().
		Str("invoice", txn.InvoiceNumber).
		Str("kasir", txn.KasirName).
		Str("total", txn.Total.String()).
		Str("method", string(txn.PaymentMethod)).
		Msg("venta registrada")

	if uc.cfg.AutoReceipt && uc.queue != nil && customer != nil && customer.Phone != "" {
		n := ports.Notification{
			Kind:      notification.KindReceipt,
			Phone:     customer.Phone,
			Text:      notification.ReceiptMessage(uc.cfg.BusinessName, txn),
			Reference: txn.InvoiceNumber,
		}
		if qerr := uc.queue.Enqueue(context.WithoutCancel(ctx), n); qerr != nil {
			uc.log.Warn().Err(qerr).Str("invoice", txn.InvoiceNumber).Msg("no se pudo encolar el recibo")
		}
	}

	resp := dto.ToTransactionResponse(txn)
	return &resp, false, nil
}

// List ventas visibles para el caller; un kasir solo ve las propias.
func (uc *TransactionUseCase) List(ctx context.Context, caller entity.Actor, q dto.TransactionListQuery) ([]dto.TransactionResponse, error) {
	f := repository.TransactionFilter{ShiftID: q.ShiftID, Limit: q.Limit}
	if caller.IsKasir() {
		f.KasirID = caller.UserID
	}
	var err error
	if f.From, err = parseBound(q.From, false); err != nil {
		return nil, err
	}
	if f.To, err = parseBound(q.To, true); err != nil {
		return nil, err
	}
	txns, err := uc.store.Transactions.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

// Today ventas desde la medianoche UTC.
func (uc *TransactionUseCase) Today(ctx context.Context, caller entity.Actor) ([]dto.TransactionResponse, error) {
	from := sales.InvoiceDay(uc.now())
	f := repository.TransactionFilter{From: &from}
	if caller.IsKasir() {
		f.KasirID = caller.UserID
	}
	txns, err := uc.store.Transactions.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

// Detail una venta; Forbidden si un kasir consulta la de otro.
func (uc *TransactionUseCase) Detail(ctx context.Context, caller entity.Actor, id string) (*dto.TransactionResponse, error) {
	txn, err := uc.get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToTransactionResponse(txn)
	return &out, nil
}

// ReceiptPDF recibo imprimible, con la misma regla de autorización que Detail.
func (uc *TransactionUseCase) ReceiptPDF(ctx context.Context, caller entity.Actor, id string) (pdfBytes []byte, filename string, err error) {
	if uc.receipts == nil {
		return nil, "", fmt.Errorf("generador de recibos no configurado")
	}
	txn, err := uc.get(ctx, caller, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.receipts.Generate(txn, uc.cfg.BusinessName)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("receipt_%s.pdf", txn.InvoiceNumber), nil
}

// Export hoja de cálculo de ventas en [from, to]. Sin fechas: el mes en curso.
func (uc *TransactionUseCase) Export(ctx context.Context, fromStr, toStr string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("exportador de reportes no configurado")
	}
	from, err := parseBound(fromStr, false)
	if err != nil {
		return nil, "", err
	}
	to, err := parseBound(toStr, true)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	if from == nil {
		f := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from = &f
	}
	if to == nil {
		t := sales.InvoiceDay(now).AddDate(0, 0, 1)
		to = &t
	}
	txns, err := uc.store.Transactions.List(ctx, repository.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.TransactionsReport(txns, *from, *to)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("transactions_%s_%s.xlsx", from.Format("20060102"), to.AddDate(0, 0, -1).Format("20060102"))
	return data, name, nil
}

// Get venta sin chequeo de rol (uso interno de otros casos de uso).
func (uc *TransactionUseCase) Get(ctx context.Context, id string) (*entity.Transaction, error) {
	txn, err := uc.store.Transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, fmt.Errorf("%w: transacción", domain.ErrNotFound)
	}
	return txn, nil
}

func (uc *TransactionUseCase) get(ctx context.Context, caller entity.Actor, id string) (*entity.Transaction, error) {
	txn, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.IsKasir() && txn.KasirID != caller.UserID {
		return nil, fmt.Errorf("%w: la transacción pertenece a otro kasir", domain.ErrForbidden)
	}
	return txn, nil
}

// byIdempotencyKey venta previa con la llave; ErrDuplicate si la registró otro kasir.
func (uc *TransactionUseCase) byIdempotencyKey(ctx context.Context, kasir *entity.User, key string) (*dto.TransactionResponse, error) {
	prev, err := uc.store.Transactions.GetByIdempotencyKey(ctx, key)
	if err != nil || prev == nil {
		return nil, err
	}
	if prev.KasirID != kasir.ID {
		return nil, fmt.Errorf("%w: la llave de idempotencia ya fue usada por otro kasir", domain.ErrDuplicate)
	}
	out := dto.ToTransactionResponse(prev)
	return &out, nil
}

func idemGuardKey(key string) string { return "idem:txn:" + key }

// parseBound acepta RFC3339 o YYYY-MM-DD. Un "to" de solo fecha incluye el día completo.
func parseBound(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q (use YYYY-MM-DD o RFC3339)", domain.ErrInvalidInput, s)
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
