package bootstrap

import (
	"log/slog"

	"furnished-lease-engine/internal/handler/middleware"
	"furnished-lease-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog's default, so packages logging through slog share its handler.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
