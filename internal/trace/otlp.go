package trace

import (
	"context"
	"os"

	"tuicalc/internal/calc"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	tracerName         = "tuicalc/calc"
	defaultServiceName = "tuicalc"
)

// Exporter turns calculator evaluations into OTLP spans.
// Each Exporter opens one "calc.session" span; evaluations are its children.
type Exporter struct {
	provider   *sdktrace.TracerProvider
	tracer     oteltrace.Tracer
	sessionCtx context.Context
	session    oteltrace.Span
}

// Ensure Exporter can be registered on a calc.Session.
var _ calc.Observer = (*Exporter)(nil)

// NewOTLPExporter creates an exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled). The endpoint is a base
// URL such as http://localhost:4318; otlptracehttp reads it from the
// environment and sends to its /v1/traces path.
func NewOTLPExporter(ctx context.Context) (*Exporter, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return newExporter(ctx, sdktrace.WithBatcher(exporter)), nil
}

// NewExporter wires an arbitrary span exporter synchronously. Used by tests
// and by callers that bring their own collector client.
func NewExporter(ctx context.Context, se sdktrace.SpanExporter) *Exporter {
	return newExporter(ctx, sdktrace.WithSyncer(se))
}

func newExporter(ctx context.Context, opt sdktrace.TracerProviderOption) *Exporter {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	tracer := provider.Tracer(tracerName)
	sessionCtx, session := tracer.Start(ctx, "calc.session")
	return &Exporter{
		provider:   provider,
		tracer:     tracer,
		sessionCtx: sessionCtx,
		session:    session,
	}
}

// OnEvaluate records one evaluation as a child span of the session,
// using the evaluation's own start time and duration.
func (e *Exporter) OnEvaluate(ev calc.Evaluation) {
	if e == nil {
		return
	}
	_, span := e.tracer.Start(e.sessionCtx, "calc.evaluate",
		oteltrace.WithTimestamp(ev.Start),
	)
	span.SetAttributes(
		attribute.String("tuicalc.expression", ev.Expression),
		attribute.String("tuicalc.result", ev.Result),
		attribute.String("tuicalc.outcome", ev.Outcome()),
	)
	if ev.Err != nil {
		span.SetStatus(codes.Error, ev.Err.Error())
	}
	span.End(oteltrace.WithTimestamp(ev.Start.Add(ev.Duration)))
}

// Shutdown ends the session span, flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.session.End()
	return e.provider.Shutdown(ctx)
}
