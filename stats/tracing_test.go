package stats

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/require"
)

func TestWithTracingEmitsSpanPerPhase(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	c := New("hdastar-mp", 4, "graph.txt", 3, WithTracing(otel.Tracer("hdastar-test")))

	c.BeginRead(context.Background())
	c.EndRead()
	c.BeginSearch(context.Background())
	c.EndSearch()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	require.Equal(t, "graph-read", spans[0].Name)
	require.Equal(t, "search", spans[1].Name)
}
