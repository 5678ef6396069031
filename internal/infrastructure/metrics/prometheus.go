// Package metrics instrumentación Prometheus del POS.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain/entity"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus registro propio (no el global) para que cada instancia sea independiente.
type Prometheus struct {
	registry      *prometheus.Registry
	transactions  *prometheus.CounterVec
	salesAmount   prometheus.Counter
	notifications *prometheus.CounterVec
	shiftVariance *prometheus.GaugeVec
	httpDuration  *prometheus.HistogramVec
}

// New crea y registra los instrumentos.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_transactions_total",
			Help: "Ventas registradas por medio de pago.",
		}, []string{"payment_method"}),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_sales_amount_total",
			Help: "Suma de totales de venta (Rupiah).",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_notifications_total",
			Help: "Notificaciones WhatsApp por tipo y resultado.",
		}, []string{"kind", "result"}),
		shiftVariance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pos_shift_variance",
			Help: "Diferencia de caja del último turno cerrado por kasir.",
		}, []string{"kasir"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_http_request_duration_seconds",
			Help:    "Latencia de las solicitudes HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.transactions, p.salesAmount, p.notifications, p.shiftVariance, p.httpDuration,
	)
	return p
}

func (p *Prometheus) TransactionRecorded(method entity.PaymentMethod, total decimal.Decimal) {
	p.transactions.WithLabelValues(string(method)).Inc()
	if f := total.InexactFloat64(); f > 0 {
		p.salesAmount.Add(f)
	}
}

func (p *Prometheus) NotificationDelivered(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.notifications.WithLabelValues(kind, result).Inc()
}

func (p *Prometheus) ShiftClosed(kasirName string, variance decimal.Decimal) {
	p.shiftVariance.WithLabelValues(kasirName).Set(variance.InexactFloat64())
}

// ObserveHTTP lo llama el middleware de Fiber; route es el patrón, no la URL.
func (p *Prometheus) ObserveHTTP(method, route string, status int, took time.Duration) {
	p.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(took.Seconds())
}

// Handler expone /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
