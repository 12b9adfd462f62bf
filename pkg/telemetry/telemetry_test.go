package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/mobiledetect/pkg/telemetry"
)

func TestSetup_Noop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  telemetry.Config
	}{
		{name: "no endpoint", cfg: telemetry.Config{Enabled: true}},
		{name: "disabled", cfg: telemetry.Config{Endpoint: "http://localhost:4318"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			shutdown, err := telemetry.Setup(context.Background(), tc.cfg)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.NoError(t, shutdown(ctx))
		})
	}
}

func TestSetup_WithEndpoint(t *testing.T) {
	// non-routable address, nothing is exported before shutdown
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "test",
		SampleRatio: 0.5,
	})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestConfig_Sampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ratio float64
		want  sdktrace.Sampler
	}{
		{name: "zero samples nothing", ratio: 0, want: sdktrace.NeverSample()},
		{name: "negative samples nothing", ratio: -0.5, want: sdktrace.NeverSample()},
		{name: "one samples everything", ratio: 1, want: sdktrace.AlwaysSample()},
		{name: "above one samples everything", ratio: 2, want: sdktrace.AlwaysSample()},
		{name: "ratio", ratio: 0.25, want: sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := telemetry.Config{SampleRatio: tc.ratio}.Sampler()
			assert.Equal(t, tc.want.Description(), got.Description())
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var inner trace.SpanContext
	h := telemetry.Middleware(tp)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusBadGateway)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/news", nil))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, "GET /news", span.Name())
	assert.Equal(t, trace.SpanKindServer, span.SpanKind())
	assert.Equal(t, inner.SpanID(), span.SpanContext().SpanID())
	assert.Contains(t, span.Attributes(), attribute.String("http.request.method", "GET"))
	assert.Contains(t, span.Attributes(), attribute.String("url.path", "/news"))
	assert.Contains(t, span.Attributes(), attribute.Int("http.response.status_code", http.StatusBadGateway))
	assert.Equal(t, codes.Error, span.Status().Code)
}
