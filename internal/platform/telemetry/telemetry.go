// Package telemetry sets up OpenTelemetry tracing and metrics, exporting to
// stdout during development or to an OTLP/HTTP collector, and holds the
// service's metric instruments:
//
//	mp, err := telemetry.InitMeter(ctx, "marketplace-core", telemetry.ExporterOTLP, "http://otel:4318")
//	metrics, err := telemetry.NewMetrics(mp, "marketplace-core")
//	metrics.RecordTransition(ctx, "bounty", "expired", telemetry.ResultSuccess)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Result attribute values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrKind        = attribute.Key("entity.kind")
	AttrToStatus    = attribute.Key("entity.to_status")
	AttrReason      = attribute.Key("reason")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	TransitionTotal     metric.Int64Counter
	PairedFailureTotal  metric.Int64Counter
	SweepTransitioned   metric.Int64Counter
	SweepDuration       metric.Float64Histogram
	EventPublishFailure metric.Int64Counter
}

// InitTracer builds a TracerProvider batching to the selected exporter,
// installs it globally with W3C trace context and baggage propagation, and
// returns it so the caller can shut it down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	spans, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp, nil
}

// InitMeter builds a MeterProvider with a periodic reader on the selected
// exporter and installs it globally.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := prepare(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	readings, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)), sdkmetric.WithResource(res))
	otel.SetMeterProvider(mp)
	return mp, nil
}

// prepare checks the exporter choice and builds the service resource.
func prepare(serviceName, exporter, endpoint string) (*resource.Resource, error) {
	switch {
	case exporter != ExporterStdout && exporter != ExporterOTLP:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	case exporter == ExporterOTLP && endpoint == "":
		return nil, errors.New("otlp exporter requires an endpoint")
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	return res, nil
}

// instruments collects instrument creation errors so NewMetrics can report
// them together.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (in *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func (in *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

// NewMetrics registers every instrument on mp under a meter scoped to the
// module path and tagged with serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	in := &instruments{meter: mp.Meter("github.com/jsamuelsen11/marketplace-core",
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))}

	m := &Metrics{
		ServerRequestDuration: in.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    in.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: in.seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    in.counter("http.client.request.total", "Outgoing HTTP requests", "{request}"),

		TransitionTotal:     in.counter("lifecycle.transition.total", "Status transitions attempted, by kind, target and result", "{transition}"),
		PairedFailureTotal:  in.counter("lifecycle.paired.failure.total", "Paired transitions that failed after their first step", "{failure}"),
		SweepTransitioned:   in.counter("sweep.transitioned.total", "Entities moved by deadline sweeps", "{entity}"),
		SweepDuration:       in.seconds("sweep.duration", "Duration of deadline sweeps"),
		EventPublishFailure: in.counter("events.publish.failure.total", "Lifecycle events that a publisher failed to deliver", "{event}"),
	}
	if err := errors.Join(in.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordTransition counts one transition attempt.
func (m *Metrics) RecordTransition(ctx context.Context, kind, to, result string) {
	if m == nil {
		return
	}
	m.TransitionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrKind.String(kind),
		AttrToStatus.String(to),
		AttrResult.String(result),
	))
}

// RecordPairedFailure counts a paired transition that failed after its
// first step, labelled with the partial failure reason.
func (m *Metrics) RecordPairedFailure(ctx context.Context, operation, reason string) {
	if m == nil {
		return
	}
	m.PairedFailureTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		AttrReason.String(reason),
	))
}

// RecordSweep records one completed sweep.
func (m *Metrics) RecordSweep(ctx context.Context, kind string, transitioned int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	attrs := metric.WithAttributes(AttrKind.String(kind), AttrResult.String(result))
	m.SweepTransitioned.Add(ctx, int64(transitioned), attrs)
	m.SweepDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordPublishFailure counts an event a publisher failed to deliver.
func (m *Metrics) RecordPublishFailure(ctx context.Context, eventType string) {
	if m == nil {
		return
	}
	m.EventPublishFailure.Add(ctx, 1, metric.WithAttributes(attribute.String("event.type", eventType)))
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	if exporter != ExporterOTLP {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, secure := parseEndpoint(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	if exporter != ExporterOTLP {
		return stdoutmetric.New()
	}
	host, secure := parseEndpoint(endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if !secure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// parseEndpoint splits a collector URL such as "https://otel:4318" into the
// host:port the OTLP exporters want and whether TLS is used. A bare
// host:port is returned as is and treated as plain HTTP.
func parseEndpoint(endpoint string) (hostPort string, secure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, false
	}
	return u.Host, u.Scheme == "https"
}
