package bootstrap

import (
	"furnished-lease-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	IntegrationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	WorkerModule,
	components.HandlerModule,
)
