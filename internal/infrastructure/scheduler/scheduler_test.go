package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReminders struct {
	calls int
	panic bool
}

func (s *stubReminders) CheckExpiring(context.Context) (int, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	return 2, nil
}

type stubCounters struct{ before time.Time }

func (s *stubCounters) PurgeBefore(_ context.Context, day time.Time) (int64, error) {
	s.before = day
	return 5, nil
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := New(Config{ReminderSpec: "cada rato"}, &stubReminders{}, &stubCounters{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestPurgeCounters_Retencion90Dias(t *testing.T) {
	counters := &stubCounters{}
	s, err := New(Config{}, &stubReminders{}, counters, zerolog.Nop())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, s.PurgeCounters(context.Background()))
	assert.Equal(t, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), counters.before)
}

func TestRun_RecuperaPanic(t *testing.T) {
	reminders := &stubReminders{panic: true}
	s, err := New(Config{ReminderSpec: "@every 1h"}, reminders, &stubCounters{}, zerolog.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() { s.run("membership_reminders", s.RunReminders) })
	assert.Equal(t, 1, reminders.calls)
	assert.NotPanics(t, func() {
		s.run("failing", func(context.Context) error { return errors.New("x") })
	})
}

func TestStartStop(t *testing.T) {
	s, err := New(Config{Location: time.UTC}, &stubReminders{}, &stubCounters{}, zerolog.Nop())
	require.NoError(t, err)
	s.Start()
	assert.Len(t, s.cron.Entries(), 2)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
