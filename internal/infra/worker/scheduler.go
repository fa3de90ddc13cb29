package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

// Scheduler runs periodic housekeeping: queue depth refresh and the idempotency retention sweep.
type Scheduler struct {
	cron         *cron.Cron
	housekeeping commands.HousekeepingCommands
	idemCfg      config.IdempotencyConfig
	metricsCfg   config.MetricsConfig
	logger       *slog.Logger

	mu        sync.Mutex
	isRunning bool
}

func NewScheduler(housekeeping commands.HousekeepingCommands, idemCfg config.IdempotencyConfig, metricsCfg config.MetricsConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		housekeeping: housekeeping,
		idemCfg:      idemCfg,
		metricsCfg:   metricsCfg,
		logger:       logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if _, err := s.cron.AddFunc(s.metricsCfg.QueueDepthSchedule, s.refreshQueueDepth); err != nil {
		return fmt.Errorf("failed to add queue depth job: %w", err)
	}

	if s.idemCfg.Retention > 0 {
		if _, err := s.cron.AddFunc(s.idemCfg.SweepSchedule, s.sweepIdempotency); err != nil {
			return fmt.Errorf("failed to add retention job: %w", err)
		}
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	s.isRunning = false

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *Scheduler) refreshQueueDepth() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	depth, err := s.housekeeping.RefreshQueueDepth(ctx)
	if err != nil {
		s.logger.Error("failed to refresh queue depth", "error", err.Error())
		return
	}
	s.logger.Debug("queue depth refreshed", "depth", depth)
}

func (s *Scheduler) sweepIdempotency() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.housekeeping.SweepIdempotencyRecords(ctx); err != nil {
		s.logger.Error("idempotency retention sweep failed", "error", err.Error())
	}
}
