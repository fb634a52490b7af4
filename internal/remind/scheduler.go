package remind

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shohagvaii216/FinTrack/internal/calculator"
	"github.com/shohagvaii216/FinTrack/internal/ledger"
	"github.com/shohagvaii216/FinTrack/internal/observability"
)

// Source supplies the state a digest is built from. *ledger.Ledger is one.
type Source interface {
	Snapshot() ledger.Snapshot
	Today() string
}

// Scheduler sends the digest once a day at the profile's reminder time.
type Scheduler struct {
	source   Source
	notifier Notifier
	metrics  *observability.Metrics
	cron     *cron.Cron

	mu    sync.Mutex
	entry cron.EntryID
	clock string
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMetrics counts every run.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// WithLocation sets the time zone reminder times are read in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.cron = cron.New(cron.WithLocation(loc)) }
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(source Source, notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{source: source, notifier: notifier, cron: cron.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CronSpec converts an "HH:MM" reminder time into a daily cron expression.
// An empty time means the default of 22:00.
func CronSpec(reminderTime string) (string, error) {
	if reminderTime == "" {
		reminderTime = calculator.DefaultReminderTime
	}
	hour, minute, err := calculator.ParseClock(reminderTime)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// RunOnce builds today's digest and sends it unless it is empty.
func (s *Scheduler) RunOnce(ctx context.Context) (Digest, error) {
	d := Build(s.source.Snapshot(), s.source.Today())
	if d.Empty() {
		slog.Debug("Nothing to remind", "date", d.Date)
		s.count("empty")
		return d, nil
	}
	if err := s.notifier.Notify(ctx, d); err != nil {
		s.count("error")
		return d, err
	}
	s.count("sent")
	return d, nil
}

// Start schedules the digest at reminderTime and starts the cron loop.
func (s *Scheduler) Start(reminderTime string) error {
	if err := s.Reschedule(reminderTime); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop. The returned context is done once a running
// digest has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Reschedule moves the daily run to reminderTime. It is a no-op when the time
// is unchanged.
func (s *Scheduler) Reschedule(reminderTime string) error {
	spec, err := CronSpec(reminderTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != 0 && s.clock == spec {
		return nil
	}
	id, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			slog.Error("Reminder failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}
	if s.entry != 0 {
		s.cron.Remove(s.entry)
	}
	s.entry, s.clock = id, spec
	slog.Info("Reminder scheduled", "spec", spec)
	return nil
}

// Spec returns the cron expression currently scheduled, or "".
func (s *Scheduler) Spec() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// Subscriber follows reminder time edits in the profile.
func (s *Scheduler) Subscriber() ledger.Subscriber {
	return func(_ context.Context, change ledger.Change) {
		if !slices.Contains(change.Collections, ledger.Profile) {
			return
		}
		if err := s.Reschedule(change.Snapshot.Profile.ReminderTime); err != nil {
			slog.Warn("Keeping previous reminder time", "reminder_time", change.Snapshot.Profile.ReminderTime, "error", err)
		}
	}
}

func (s *Scheduler) count(status string) {
	if s.metrics != nil {
		s.metrics.IncrReminder(status)
	}
}
