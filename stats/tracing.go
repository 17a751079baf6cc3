package stats

import "go.opentelemetry.io/otel/trace"

// WithTracing enables an OpenTelemetry span per phase (graph-read,
// search), parented to whatever context the caller passes into
// BeginRead/BeginSearch.
func WithTracing(tracer trace.Tracer) Option {
	return func(c *Collector) { c.tracer = tracer }
}
