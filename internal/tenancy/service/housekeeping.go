package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/store"
)

// HousekeepingService periodically purges invites that expired beyond
// the retention window and were never accepted, keeping the invites
// table from growing without bound. Accepted and cancelled rows are
// audit trail and are never deleted.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService builds the service. A non-positive interval
// defaults to 1 hour, a non-positive retention to 30 days.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop shuts the worker down, blocking until any in-progress cleanup
// finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run once on startup.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-s.Retention)

	if err := s.Store.Invites().DeleteExpiredBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to purge expired invites", "error", err)
		return
	}
	s.Logger.Debug("purged expired invites", "cutoff", cutoff)
}
