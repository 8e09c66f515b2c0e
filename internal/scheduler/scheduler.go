// Package scheduler drives the background refresh jobs.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/store"
)

// Refresher is a component with a periodic refresh job.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Scheduler runs the feed refresh, the calendar refresh, and the daily
// budget reset sweep.
type Scheduler struct {
	cron     *cron.Cron
	feeds    Refresher
	calendar Refresher
	settings *store.SettingsStore
}

func New(feeds, calendar Refresher, settings *store.SettingsStore) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		feeds:    feeds,
		calendar: calendar,
		settings: settings,
	}
}

// Start registers and launches all jobs. The feed interval comes from the
// current settings; a changed interval takes effect after restart, the
// feed cache TTL follows it immediately.
func (s *Scheduler) Start() error {
	interval := s.settings.Get().RefreshInterval
	if interval < 10 {
		interval = 10
	}

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", interval), func() {
		s.feeds.Refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}

	if _, err := s.cron.AddFunc("0 * * * *", func() {
		s.calendar.Refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule calendar refresh: %w", err)
	}

	// The daily cost reset fires lazily on any settings access; this sweep
	// guarantees it also happens on idle days.
	if _, err := s.cron.AddFunc("0 0 * * *", func() {
		ctx := context.Background()
		settings := s.settings.Get()
		logger.Budget(ctx, "reset", settings.APICosts, settings.DailyLimit)
	}); err != nil {
		return fmt.Errorf("failed to schedule budget reset sweep: %w", err)
	}

	s.cron.Start()
	logger.Info(context.Background(), "Scheduler started", "feed_interval_seconds", interval)
	return nil
}

// Stop halts all jobs and waits for running ones to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
