package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "apptemplate"

// OTLPExporter exports recorded events as spans under one session span
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	session  oteltrace.Span
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	// A full URL is picked up from the environment by the client itself; a
	// bare host:port is treated as a local plaintext collector.
	var opts []otlptracehttp.Option
	if !strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newExporter(ctx, sdktrace.WithBatcher(exporter)), nil
}

func newExporter(ctx context.Context, processor sdktrace.TracerProviderOption) *OTLPExporter {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
	)
	tracer := provider.Tracer("apptemplate/navigation")
	_, session := tracer.Start(ctx, "session")

	return &OTLPExporter{
		provider: provider,
		tracer:   tracer,
		session:  session,
	}
}

// TraceID returns the session span's trace ID as hex, or "" when disabled.
func (e *OTLPExporter) TraceID() string {
	if e == nil {
		return ""
	}
	return e.session.SpanContext().TraceID().String()
}

// ExportEvent exports e as a zero-length child of the session span
func (e *OTLPExporter) ExportEvent(ctx context.Context, ev Event) {
	if e == nil {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(ev.Attributes))
	for k, v := range ev.Attributes {
		attrs = append(attrs, attribute.String(attributeKey(ev.Type, k), v))
	}

	_, span := e.tracer.Start(
		oteltrace.ContextWithSpan(ctx, e.session),
		string(ev.Type)+" "+ev.Name,
		oteltrace.WithTimestamp(ev.Timestamp),
		oteltrace.WithAttributes(attrs...),
	)
	span.End(oteltrace.WithTimestamp(ev.Timestamp))
}

// attributeKey maps event attributes into the app.* namespace
func attributeKey(t EventType, k string) string {
	switch t {
	case EventNavigate:
		if strings.HasPrefix(k, "param.") {
			return "app.route." + k
		}
		return "app.navigation." + k
	case EventAnimate:
		return "app.animation." + k
	default:
		return "app." + k
	}
}

// Shutdown ends the session span, then flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.session.End()
	return e.provider.Shutdown(ctx)
}
