package components

import (
	"furnished-lease-engine/internal/domain/lease"
	"furnished-lease-engine/internal/pkg/clock"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/usecase/commands"
	"furnished-lease-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) lease.DepositPolicy {
		return lease.DepositPolicy{Months: cfg.Lease.DepositMonths}
	},
	func(cfg config.Config) commands.PaymentSettings {
		return commands.PaymentSettings{
			Mode:            cfg.Payment.Mode,
			DefaultCurrency: cfg.Payment.DefaultCurrency,
			GatewayTimeout:  cfg.Payment.GatewayTimeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentConfirmer,
		commands.NewLeaseUseCase,
		commands.NewInvoiceUseCase,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeaseQueries,
	),
)
