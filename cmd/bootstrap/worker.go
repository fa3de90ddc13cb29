package bootstrap

import (
	"context"
	"log/slog"

	"newsletter-delivery/internal/infra/worker"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDeliveryWorker,
		NewScheduler,
	),
	fx.Invoke(
		RegisterDeliveryWorker,
		RegisterScheduler,
	),
)

func NewDeliveryWorker(executor commands.DeliveryCommands, cfg config.Config, logger *slog.Logger) *worker.DeliveryWorker {
	return worker.NewDeliveryWorker(executor, cfg.Delivery, logger)
}

func NewScheduler(housekeeping commands.HousekeepingCommands, cfg config.Config, logger *slog.Logger) *worker.Scheduler {
	return worker.NewScheduler(housekeeping, cfg.Idempotency, cfg.Metrics, logger)
}

// RegisterDeliveryWorker runs the queue consumer in-process unless DELIVERY_ENABLED is false.
func RegisterDeliveryWorker(lc fx.Lifecycle, w *worker.DeliveryWorker, cfg config.Config, logger *slog.Logger) {
	if !cfg.Delivery.Enabled {
		logger.Info("delivery worker disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, s *worker.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
