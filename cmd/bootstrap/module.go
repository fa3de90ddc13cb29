package bootstrap

import (
	"newsletter-delivery/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	ObservabilityModule,
	components.PersistenceModule,
	components.EmailModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
