package bootstrap

import (
	"context"

	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/metrics"
	"newsletter-delivery/internal/pkg/observability"

	"go.uber.org/fx"
)

// Version is overridden at build time with -ldflags "-X newsletter-delivery/cmd/bootstrap.Version=..."
var Version = "dev"

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.NewMetrics,
	),
	fx.Invoke(SetupTracing),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := observability.SetupOTel(context.Background(), cfg.OTEL, Version)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
