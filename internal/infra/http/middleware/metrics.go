package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_lead_moves_total",
			Help: "Kanban drops by target column and outcome",
		},
		[]string{"to", "outcome"},
	)

	salesClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sales_closed_total",
			Help: "Total number of leads closed with a sale record",
		},
	)

	saleValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crm_sale_value_brl",
			Help:    "Value of closed sales in BRL",
			Buckets: []float64{100, 500, 1000, 2000, 3500, 5000, 10000},
		},
	)

	followUpsOverdue = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_followups_overdue_total",
			Help: "Follow-ups that became overdue, by kind",
		},
		[]string{"kind"},
	)

	eventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_event_publish_errors_total",
			Help: "Total number of domain event publish errors",
		},
		[]string{"transport"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// routePattern usa o padrão do chi (/leads/{id}) para não explodir a cardinalidade.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

func RecordLeadMove(to, outcome string) {
	leadMoves.WithLabelValues(to, outcome).Inc()
}

func RecordSaleClosed(value float64) {
	salesClosed.Inc()
	saleValue.Observe(value)
}

func RecordFollowUpsOverdue(kind string, n int) {
	followUpsOverdue.WithLabelValues(kind).Add(float64(n))
}

func RecordEventPublishError(transport string) {
	eventPublishErrors.WithLabelValues(transport).Inc()
}
