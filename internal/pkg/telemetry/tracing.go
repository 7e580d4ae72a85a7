package telemetry

import (
	"context"

	"furnished-lease-engine/internal/pkg/config"
	"furnished-lease-engine/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serviceVersion = "0.1.0"

// InitTracer installs the global tracer provider and W3C propagator.
// The returned func flushes pending spans.
func InitTracer(ctx context.Context, app config.AppConfig, cfg config.TracingConfig) (func(context.Context) error, error) {
	// collector runs next to the service; plaintext gRPC
	conn, err := grpc.NewClient(cfg.Endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errs.Wrap(err, "otlp dial")
	}
	exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, errs.Wrap(err, "otlp exporter")
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(serviceVersion),
			semconv.DeploymentEnvironmentKey.String(app.Env),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "otel resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		shutdownErr := tp.Shutdown(ctx)
		if closeErr := conn.Close(); closeErr != nil && shutdownErr == nil {
			return closeErr
		}
		return shutdownErr
	}, nil
}
