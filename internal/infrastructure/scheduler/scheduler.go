// Package scheduler tareas periódicas: recordatorios de membresía y limpieza de contadores de factura.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CounterRetention días de contadores de factura que se conservan.
const CounterRetention = 90

// ReminderChecker encola los recordatorios de membresías por vencer.
type ReminderChecker interface {
	CheckExpiring(ctx context.Context) (int, error)
}

// CounterPurger elimina contadores de factura anteriores a day.
type CounterPurger interface {
	PurgeBefore(ctx context.Context, day time.Time) (int64, error)
}

// Config parámetros del scheduler.
type Config struct {
	Location     *time.Location
	ReminderSpec string // expresión cron, p. ej. "0 9 * * *"
	JobTimeout   time.Duration
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Scheduler envuelve robfig/cron.
type Scheduler struct {
	cron      *cron.Cron
	reminders ReminderChecker
	counters  CounterPurger
	timeout   time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// New registra los trabajos; devuelve error si la expresión cron es inválida.
func New(cfg Config, reminders ReminderChecker, counters CounterPurger, log zerolog.Logger) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	if cfg.ReminderSpec == "" {
		cfg.ReminderSpec = "0 9 * * *"
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 5 * time.Minute
	}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(cronParser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		reminders: reminders,
		counters:  counters,
		timeout:   cfg.JobTimeout,
		now:       time.Now,
		log:       log,
	}
	if _, err := s.cron.AddFunc(cfg.ReminderSpec, func() { s.run("membership_reminders", s.RunReminders) }); err != nil {
		return nil, fmt.Errorf("cron recordatorios %q: %w", cfg.ReminderSpec, err)
	}
	if _, err := s.cron.AddFunc("@daily", func() { s.run("purge_invoice_counters", s.PurgeCounters) }); err != nil {
		return nil, fmt.Errorf("cron limpieza: %w", err)
	}
	return s, nil
}

// Start arranca el scheduler en su propia goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler iniciado")
}

// Stop deja de programar trabajos y espera a los que están en curso o a ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler: trabajos en curso abandonados al apagar")
	}
}

// RunReminders un ciclo del trabajo de recordatorios.
func (s *Scheduler) RunReminders(ctx context.Context) error {
	n, err := s.reminders.CheckExpiring(ctx)
	if err != nil {
		return err
	}
	s.log.Info().Int("enqueued", n).Msg("recordatorios de membresía encolados")
	return nil
}

// PurgeCounters borra contadores con más de CounterRetention días.
func (s *Scheduler) PurgeCounters(ctx context.Context) error {
	cutoff := s.now().UTC().AddDate(0, 0, -CounterRetention)
	n, err := s.counters.PurgeBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	s.log.Info().Int64("deleted", n).Time("before", cutoff).Msg("contadores de factura purgados")
	return nil
}

// run aplica timeout y recupera panics: un trabajo roto no detiene al scheduler.
func (s *Scheduler) run(name string, job func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Str("job", name).Interface("panic", r).Msg("panic en trabajo programado")
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	start := s.now()
	if err := job(ctx); err != nil {
		s.log.Error().Err(err).Str("job", name).Msg("trabajo programado fallido")
		return
	}
	s.log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("trabajo programado completado")
}
