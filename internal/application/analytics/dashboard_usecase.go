// Package analytics contiene el resumen del dashboard del POS.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/otopia-pos/internal/application/dto"
	"github.com/jhoicas/otopia-pos/internal/application/ports"
	"github.com/jhoicas/otopia-pos/internal/domain/membership"
	"github.com/jhoicas/otopia-pos/internal/domain/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardUseCase genera las cifras del día.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// El resultado se guarda 30s en caché cuando hay una disponible.
type DashboardUseCase struct {
	repo  repository.AnalyticsRepository
	cache ports.Cache
	log   zerolog.Logger
	now   func() time.Time
	loc   *time.Location
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
// loc define dónde empieza "hoy"; nil equivale a UTC.
func NewDashboardUseCase(repo repository.AnalyticsRepository, cache ports.Cache, loc *time.Location, log zerolog.Logger) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{repo: repo, cache: cache, log: log, now: time.Now, loc: loc}
}

// Stats ejecuta las cuatro consultas en paralelo:
//  1. SalesSince(hoy)            → ingresos y transacciones
//  2. MembershipCounts           → vigentes y por vencer (<= 7 días completos)
//  3. CountLowStock              → ítems bajo mínimo
//  4. KasirPerformanceSince(hoy) → ranking de kasir
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.cache != nil {
		var cached dto.DashboardStatsDTO
		hit, err := uc.cache.Get(ctx, statsCacheKey, &cached)
		if err != nil {
			uc.log.Warn().Err(err).Msg("dashboard: caché no disponible")
		} else if hit {
			return &cached, nil
		}
	}

	now := uc.now().In(uc.loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.loc)

	var (
		out   dto.DashboardStatsDTO
		perf  []repository.KasirPerformance
		count int
		rev   decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rev, count, err = uc.repo.SalesSince(gctx, todayStart)
		if err != nil {
			return fmt.Errorf("dashboard: ventas de hoy: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		out.ActiveMemberships, out.ExpiringMemberships, err = uc.repo.MembershipCounts(gctx, now, membership.ExpiringCutoff(now))
		if err != nil {
			return fmt.Errorf("dashboard: membresías: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		out.LowStockItems, err = uc.repo.CountLowStock(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: stock bajo: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		perf, err = uc.repo.KasirPerformanceSince(gctx, todayStart)
		if err != nil {
			return fmt.Errorf("dashboard: kasir: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TodayRevenue = rev
	out.TodayTransactions = count
	out.KasirPerformance = make([]dto.KasirPerformanceDTO, 0, len(perf))
	for _, p := range perf {
		out.KasirPerformance = append(out.KasirPerformance, dto.KasirPerformanceDTO{
			KasirID:          p.KasirID,
			KasirName:        p.KasirName,
			TransactionCount: p.TransactionCount,
			Revenue:          p.Revenue,
		})
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, statsCacheKey, out, statsCacheTTL); err != nil {
			uc.log.Warn().Err(err).Msg("dashboard: no se pudo guardar en caché")
		}
	}
	return &out, nil
}
