package components

import (
	"newsletter-delivery/internal/pkg/clock"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/metrics"
	"newsletter-delivery/internal/usecase"
	"newsletter-delivery/internal/usecase/commands"
	"newsletter-delivery/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPublishNewsletterUseCase,
		NewDeliveryUseCase,
		NewHousekeepingUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewDeliveryUseCase(uow shared.UnitOfWork, sender shared.EmailSender, clk clock.Clock, cfg config.Config, m *metrics.Metrics) commands.DeliveryCommands {
	return commands.NewDeliveryUseCase(uow, sender, clk, cfg.Delivery, m)
}

func NewHousekeepingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, m *metrics.Metrics) commands.HousekeepingCommands {
	return commands.NewHousekeepingUseCase(uow, clk, cfg.Idempotency, m)
}
