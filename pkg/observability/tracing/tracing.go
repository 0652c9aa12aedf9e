/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Jaeger SpanExporterType = "JAEGER"
	Stdout SpanExporterType = "STDOUT"
)

const (
	JaegerAgentEndpointEnvKey     = "OTEL_EXPORTER_JAEGER_AGENT_HOST"
	JaegerCollectorEndpointEnvKey = "OTEL_EXPORTER_JAEGER_ENDPOINT"
	tracerName                    = "https://github.com/trustbloc/wallet-trust"
)

// Resource attributes describing the trust registry the service talks to.
const (
	RegistryURLKey  = attribute.Key("trust_registry.url")
	EcosystemDIDKey = attribute.Key("trust_registry.ecosystem_did")
)

type options struct {
	serviceVersion string
	registryURL    string
	ecosystemDID   string
	spanExporter   tracesdk.SpanExporter
}

// Opt configures the tracer provider created by Initialize.
type Opt func(opts *options)

// WithServiceVersion sets the service.version resource attribute.
func WithServiceVersion(version string) Opt {
	return func(opts *options) {
		opts.serviceVersion = version
	}
}

// WithRegistry tags every span with the trust registry URL and ecosystem DID. Empty values are omitted.
func WithRegistry(url, ecosystemDID string) Opt {
	return func(opts *options) {
		opts.registryURL = url
		opts.ecosystemDID = ecosystemDID
	}
}

// WithSpanExporter replaces the exporter selected by the exporter type.
func WithSpanExporter(exporter tracesdk.SpanExporter) Opt {
	return func(opts *options) {
		opts.spanExporter = exporter
	}
}

// IsExportedSupported reports whether the given span exporter type can be passed to Initialize.
func IsExportedSupported(exporter SpanExporterType) bool {
	switch exporter {
	case None, Jaeger, Stdout:
		return true
	default:
		return false
	}
}

// Initialize creates and registers globally a new tracer provider with specified span exporter.
// Return values are:
// - func() - Should be called to gracefully shut down the tracer provider before the process terminates.
// - trace.Tracer - Used to start new spans.
// - error - An error if the tracer provider could not be initialized or nil if successful.
func Initialize(exporter SpanExporterType, serviceName string, opts ...Opt) (func(), trace.Tracer, error) {
	if exporter == None {
		return func() {}, trace.NewNoopTracerProvider().Tracer(""), nil
	}

	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	var (
		spanExporter = o.spanExporter
		err          error
	)

	switch {
	case spanExporter != nil:
	case exporter == Jaeger:
		var endpoint jaeger.EndpointOption

		switch {
		case os.Getenv(JaegerAgentEndpointEnvKey) != "":
			endpoint = jaeger.WithAgentEndpoint()
		case os.Getenv(JaegerCollectorEndpointEnvKey) != "":
			endpoint = jaeger.WithCollectorEndpoint()
		default:
			return nil, nil, fmt.Errorf("neither agent nor collector endpoint is provided")
		}

		spanExporter, err = jaeger.New(endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("create jaeger exporter: %w", err)
		}
	case exporter == Stdout:
		spanExporter, err = stdouttrace.New()
		if err != nil {
			return nil, nil, fmt.Errorf("create stdout exporter: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(newResource(serviceName, o)),
	)

	// Register the TracerProvider as the global so any imported
	// instrumentation in the future will default to using it.
	otel.SetTracerProvider(tracerProvider)

	// Propagate trace context via traceparent and tracestate headers (https://www.w3.org/TR/trace-context/).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if err = tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("Error shutting down tracer provider", log.WithError(err))
		}
	}, tracerProvider.Tracer(tracerName), nil
}

func newResource(serviceName string, o *options) *resource.Resource {
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName),
		semconv.ProcessPIDKey.Int(os.Getpid()),
	}

	if o.serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersionKey.String(o.serviceVersion))
	}

	if o.registryURL != "" {
		attrs = append(attrs, RegistryURLKey.String(o.registryURL))
	}

	if o.ecosystemDID != "" {
		attrs = append(attrs, EcosystemDIDKey.String(o.ecosystemDID))
	}

	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}
