package bootstrap

import (
	"context"
	"log/slog"

	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	if !cfg.Tracing.Enabled {
		return nil
	}

	shutdown, err := telemetry.InitTracer(context.Background(), cfg.App, cfg.Tracing)
	if err != nil {
		return err
	}
	logger.Info("tracing enabled", "endpoint", cfg.Tracing.Endpoint, "service", cfg.Tracing.ServiceName)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
