package bootstrap

import (
	"context"
	"log/slog"

	"furnished-lease-engine/internal/infra/gateway"
	"furnished-lease-engine/internal/infra/notify"
	"furnished-lease-engine/internal/infra/render"
	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewPaymentGateway,
		NewNotifier,
		NewDocumentRenderer,
	),
)

// NewPaymentGateway returns nil in sandbox mode; no provider is ever contacted then.
func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (commands.PaymentGateway, error) {
	if cfg.Payment.Mode == config.PaymentModeSandbox {
		logger.Warn("payment sandbox mode: declared amounts are trusted without gateway verification")
		return nil, nil
	}

	client, err := gateway.NewOmiseClient(cfg.Payment.OmisePublicKey, cfg.Payment.OmiseSecretKey, cfg.Payment.GatewayTimeout)
	if err != nil {
		return nil, err
	}
	return gateway.NewOmiseGateway(gateway.NewOmiseRetriever(client)), nil
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Notifier, error) {
	if cfg.Broker.URL == "" {
		logger.Info("no broker configured, notifications are logged only")
		return notify.NewLogNotifier(), nil
	}

	n, err := notify.NewAMQPNotifier(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n, nil
}

func NewDocumentRenderer(cfg config.Config) commands.DocumentRenderer {
	return render.NewHTTPRenderer(cfg.Renderer.BaseURL, cfg.Renderer.Timeout)
}
