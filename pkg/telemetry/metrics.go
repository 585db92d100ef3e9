package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics returns a chi-compatible middleware recording a request
// counter and a latency histogram, keyed by method, route pattern, and
// status. The chi route pattern (e.g. /api/items/{id:[0-9]+}) is used instead
// of the raw path so cardinality stays bounded. Both instruments are recorded
// exactly once per completed request regardless of outcome.
//
// Call after Setup so the instruments land on the configured meter provider.
func RequestMetrics(serviceName string) (func(http.Handler) http.Handler, error) {
	meter := otel.Meter(serviceName)

	reqTotal, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}
	reqLatency, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

			next.ServeHTTP(rw, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.response.status_code", strconv.Itoa(rw.code)),
			)
			reqTotal.Add(r.Context(), 1, attrs)
			reqLatency.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}

// statusRecorder captures the HTTP status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.code = code
	sr.ResponseWriter.WriteHeader(code)
}
