package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	routeQueries *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triroute",
			Name:      "http_requests_total",
			Help:      "Number of http requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "triroute",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of http requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		routeQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triroute",
			Name:      "route_queries_total",
			Help:      "Number of computed routes by metric and whether a path exists.",
		}, []string{"metric", "found"}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.routeQueries)
	return m
}

func (m *Metrics) observeRoute(metric string, found bool) {
	m.routeQueries.WithLabelValues(metric, strconv.FormatBool(found)).Inc()
}

func PromeHttpMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}
