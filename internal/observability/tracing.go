package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/prefeitura-rio/app-busca-processos/internal/config"
)

const (
	ServiceName    = "app-busca-processos"
	ServiceVersion = "v1.0.0"
)

// Tracer controla o provider OTLP. O valor zero é um tracer desabilitado.
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   *zap.Logger
}

// InitTracer inicializa o OpenTelemetry com exportador OTLP gRPC
func InitTracer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Tracer, error) {
	t := &Tracer{logger: logger}
	if !cfg.TracingEnabled {
		logger.Info("tracing desabilitado")
		return t, nil
	}

	// Exportador OTLP via gRPC
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar exportador OTLP: %w", err)
	}

	// Resource com identificação do serviço
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar resource: %w", err)
	}

	// Provider com envio em lotes
	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(512),
			sdktrace.WithBatchTimeout(10*time.Second),
			sdktrace.WithMaxQueueSize(2048),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	// Provider global e propagação de contexto
	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracer inicializado", zap.String("endpoint", cfg.TracingEndpoint))
	return t, nil
}

// Shutdown descarrega os spans pendentes
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("erro ao encerrar tracer provider: %w", err)
	}
	return nil
}

// Enabled indica se há exportação de spans
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}
