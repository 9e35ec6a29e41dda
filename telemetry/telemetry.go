package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	globalConfig *Config
	configOnce   sync.Once

	tracerName = "reachcompress"
)

// ShutdownFunc shuts down the TracerProvider installed by Init.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error { return nil }

// Init installs a global TracerProvider if cfg.Enabled is set (a nil cfg is
// loaded from the environment, where OTEL_ENABLED sets it); otherwise
// tracing stays a no-op and Init returns noopShutdown. Each enabled call
// installs a new global TracerProvider, replacing any earlier one.
func Init(ctx context.Context, cfg *Config) (ShutdownFunc, error) {
	if cfg == nil {
		cfg = loadConfig()
	}
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return noopShutdown, err
	}
	exporter, err := createExporter(ctx, cfg)
	if err != nil {
		return noopShutdown, err
	}
	sampler := createSampler(cfg)

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error { return tp.Shutdown(ctx) }, nil
}

// Enabled reports whether tracing is currently configured on.
func Enabled() bool { return loadConfig().Enabled }

// GetConfig returns the process-wide telemetry configuration, loading it
// from the environment on first use.
func GetConfig() *Config { return loadConfig() }

func loadConfig() *Config {
	configOnce.Do(func() { globalConfig = LoadFromEnv() })
	return globalConfig
}

// StartBuild opens a span around an OfflineIndustry build for one
// partition, tagged with the partition id and vertex count (spec.md §4.8's
// per-partition index selection).
func StartBuild(ctx context.Context, partitionID int32, numVertices int) (context.Context, oteltrace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "offline_industry.build",
		oteltrace.WithAttributes(
			attribute.Int64("reachcompress.partition_id", int64(partitionID)),
			attribute.Int("reachcompress.num_vertices", numVertices),
		))
}

// StartQuery opens a span around a single Reach/Reachable call, tagged
// with the query endpoints.
func StartQuery(ctx context.Context, u, v int32) (context.Context, oteltrace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "reachcompress.query",
		oteltrace.WithAttributes(
			attribute.Int64("reachcompress.u", int64(u)),
			attribute.Int64("reachcompress.v", int64(v)),
		))
}

// RecordCacheOutcome annotates span with whether a cache artifact load hit
// or missed, and which artifact path was involved.
func RecordCacheOutcome(span oteltrace.Span, path string, hit bool) {
	span.SetAttributes(
		attribute.String("reachcompress.cache_path", path),
		attribute.Bool("reachcompress.cache_hit", hit),
	)
}
