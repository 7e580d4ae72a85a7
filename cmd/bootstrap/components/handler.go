package components

import (
	"furnished-lease-engine/internal/handler"
	"furnished-lease-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		api.NewLeaseHandler,
	),
	fx.Invoke(handler.NewRouter),
)
