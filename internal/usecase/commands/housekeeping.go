package commands

import (
	"context"
	"log/slog"

	"newsletter-delivery/internal/pkg/clock"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/metrics"
	"newsletter-delivery/internal/usecase/shared"
)

type HousekeepingCommands interface {
	// SweepIdempotencyRecords deletes completed records past retention. Zero retention is a no-op.
	SweepIdempotencyRecords(ctx context.Context) (int64, error)
	RefreshQueueDepth(ctx context.Context) (int64, error)
}

type housekeepingUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	cfg     config.IdempotencyConfig
	metrics *metrics.Metrics
}

func NewHousekeepingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.IdempotencyConfig, m *metrics.Metrics) HousekeepingCommands {
	return &housekeepingUseCaseImpl{uow: uow, clock: clk, cfg: cfg, metrics: m}
}

func (uc *housekeepingUseCaseImpl) SweepIdempotencyRecords(ctx context.Context) (int64, error) {
	if uc.cfg.Retention <= 0 {
		return 0, nil
	}

	cutoff := uc.clock.Now().Add(-uc.cfg.Retention)
	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteCompletedBefore(ctx, tx.DB(), cutoff)
		deleted = n
		return err
	})
	if err != nil {
		return 0, err
	}

	uc.metrics.IdempotencySwept.Add(float64(deleted))
	if deleted > 0 {
		slog.InfoContext(ctx, "idempotency records swept", "deleted", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

func (uc *housekeepingUseCaseImpl) RefreshQueueDepth(ctx context.Context) (int64, error) {
	var depth int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Deliveries().Count(ctx, tx.DB())
		depth = n
		return err
	})
	if err != nil {
		return 0, err
	}
	uc.metrics.QueueDepth.Set(float64(depth))
	return depth, nil
}
